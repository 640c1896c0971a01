// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"fmt"
	"io"

	"github.com/ik5/soundscape/audio"
)

// Buffer holds a fully decoded sound as interleaved float32 samples.
// Sources need random access for looping and restart, which a streaming
// audio.Source cannot give, so sounds are drained into a Buffer once and
// played from memory. A Buffer is immutable after creation and may be
// shared by any number of sources.
type Buffer struct {
	samples  []float32
	channels int
	rate     int
}

// New wraps already decoded interleaved samples. Only mono and stereo
// material can be rendered.
func New(samples []float32, channels, rate int) (*Buffer, error) {
	if channels != 1 && channels != 2 {
		return nil, ErrBadChannelCount
	}
	if rate <= 0 {
		return nil, ErrBadSampleRate
	}
	if len(samples)%channels != 0 {
		return nil, ErrPartialFrame
	}

	return &Buffer{
		samples:  samples,
		channels: channels,
		rate:     rate,
	}, nil
}

// FromSource drains src into a new Buffer. src is closed afterwards.
func FromSource(src audio.Source) (*Buffer, error) {
	return FromSourceRate(src, src.SampleRate())
}

// FromSourceRate drains src into a new Buffer, resampling to targetRate
// when the source rate differs. Rendering assumes all buffers in a context
// share the device rate, so sounds are normally loaded with the context
// rate as target. src is closed afterwards.
func FromSourceRate(src audio.Source, targetRate int) (*Buffer, error) {
	defer src.Close()

	var stream audio.Source = src
	if src.SampleRate() != targetRate {
		stream = audio.NewResampler(src, targetRate)
	}

	var samples []float32
	buf := make([]float32, 4096)
	for {
		n, err := stream.ReadSamples(buf)
		samples = append(samples, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return New(samples, src.Channels(), targetRate)
}

func (b *Buffer) Channels() int   { return b.channels }
func (b *Buffer) SampleRate() int { return b.rate }

// Frames returns the number of sample frames (samples per channel).
func (b *Buffer) Frames() int {
	return len(b.samples) / b.channels
}

// At returns the sample for channel ch of frame f.
func (b *Buffer) At(f, ch int) float32 {
	return b.samples[f*b.channels+ch]
}
