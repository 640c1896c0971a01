// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/soundscape/audio"
)

type wavSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	remaining  int // bytes left in the data chunk
	buf        []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if s.remaining == 0 {
		return 0, io.EOF
	}

	want := len(dst) * 2
	if want > s.remaining {
		want = s.remaining
	}
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		if err == io.EOF {
			s.remaining = 0
			return 0, io.EOF
		}
		return 0, fmt.Errorf("%w", err)
	}
	s.remaining -= n

	samples := n / 2
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
		dst[i] = float32(v) / 32768.0
	}

	if s.remaining == 0 || err == io.ErrUnexpectedEOF {
		s.remaining = 0
		return samples, io.EOF
	}
	return samples, nil
}

// Decoder decodes PCM 16-bit WAV streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, ErrNotWavFile
	}

	var (
		haveFmt       bool
		channels      int
		sampleRate    int
		bitsPerSample int
	)

	// Walk chunks until the data chunk; anything else (LIST, fact, cue)
	// is skipped.
	for {
		var head [8]byte
		if _, err := io.ReadFull(r, head[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrMissingDataChunk
			}
			return nil, fmt.Errorf("%w", err)
		}
		id := string(head[0:4])
		size := int(binary.LittleEndian.Uint32(head[4:8]))

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, ErrUnsupportedWavLayout
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("%w", err)
			}
			format := binary.LittleEndian.Uint16(body[0:2])
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bitsPerSample = int(binary.LittleEndian.Uint16(body[14:16]))
			if format != 1 || bitsPerSample != 16 {
				return nil, ErrOnlyPCM16bitSupported
			}
			haveFmt = true

		case "data":
			if !haveFmt {
				return nil, ErrUnsupportedWavLayout
			}
			return &wavSource{
				r:          r,
				sampleRate: sampleRate,
				channels:   channels,
				remaining:  size,
				buf:        make([]byte, 4096),
			}, nil

		default:
			// Chunk bodies are word-aligned.
			skip := int64(size + size%2)
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return nil, fmt.Errorf("%w", err)
			}
		}
	}
}
