// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/soundscape/audio"
)

// mp3Reader is the slice of gomp3.Decoder we depend on, kept as an
// interface so tests can substitute a fake.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }

// Channels is always 2: go-mp3 upmixes mono streams to stereo.
func (s *source) Channels() int { return 2 }

func (s *source) Close() error { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// go-mp3 produces 16-bit little-endian interleaved PCM.
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		low := uint16(s.buf[2*i])
		high := uint16(s.buf[2*i+1])
		dst[i] = float32(int16(low|(high<<8))) / 32768.0
	}

	return samples, err
}

// Decoder decodes MP3 streams via go-mp3.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 4096),
	}, nil
}
