// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/soundscape/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation over a four-frame window. Works on interleaved samples and
// preserves channel count. Applies a simple one-pole low-pass when
// downsampling to tame aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames consumed per output frame
	channels int

	// Four-frame window for cubic interpolation:
	// frames[0]=t-1, frames[1]=t0, frames[2]=t+1, frames[3]=t+2.
	frames   [4][]float32
	hasFrame [4]bool
	primed   bool

	// Fractional position between frames[1] and frames[2].
	pos float64

	srcBuf []float32
	eof    bool

	filterState []float32
	useFilter   bool
	filterAlpha float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, channels),
		useFilter:   ratio > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// prime fills the initial four-frame window.
func (r *Resampler) prime() error {
	for i := 0; i < 4; i++ {
		n, err := r.src.ReadSamples(r.srcBuf)
		if n > 0 {
			copy(r.frames[i], r.srcBuf[:n])
			r.hasFrame[i] = true

			if i == 0 && r.useFilter {
				// Seed the filter to avoid a warm-up transient.
				copy(r.filterState, r.srcBuf[:n])
			}
		}
		if err == io.EOF {
			r.eof = true
			if i == 0 {
				return io.EOF
			}
			// Duplicate the last valid frame into the remaining slots.
			for j := i; j < 4; j++ {
				copy(r.frames[j], r.frames[i-1])
				r.hasFrame[j] = true
			}
			break
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	r.primed = true
	return nil
}

// fetchNextFrame shifts the window left and reads one frame into frames[3].
func (r *Resampler) fetchNextFrame() error {
	if r.eof {
		return io.EOF
	}

	copy(r.frames[0], r.frames[1])
	copy(r.frames[1], r.frames[2])
	copy(r.frames[2], r.frames[3])
	r.hasFrame[0] = r.hasFrame[1]
	r.hasFrame[1] = r.hasFrame[2]
	r.hasFrame[2] = r.hasFrame[3]

	n, err := r.src.ReadSamples(r.srcBuf)
	if n > 0 {
		copy(r.frames[3], r.srcBuf[:n])
		r.hasFrame[3] = true

		if r.useFilter {
			for c := 0; c < r.channels; c++ {
				// y[n] = alpha*x[n] + (1-alpha)*y[n-1]
				r.frames[3][c] = r.filterAlpha*r.frames[3][c] + (1-r.filterAlpha)*r.filterState[c]
				r.filterState[c] = r.frames[3][c]
			}
		}
	} else {
		r.hasFrame[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.hasFrame[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces samples at the target rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.fetchNextFrame(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.hasFrame[1] || !r.hasFrame[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)

		for c := 0; c < r.channels; c++ {
			// Duplicate edge frames when the window is short.
			y0 := r.frames[1][c]
			if r.hasFrame[0] {
				y0 = r.frames[0][c]
			}
			y1 := r.frames[1][c]
			y2 := r.frames[2][c]
			y3 := r.frames[2][c]
			if r.hasFrame[3] {
				y3 = r.frames[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
