// SPDX-License-Identifier: EPL-2.0

package hrir

import (
	"io"

	"github.com/ik5/soundscape/audio"
	"github.com/ik5/soundscape/vector"
)

// Point is one measured direction on the sphere: a unit vector from the
// head to the measurement speaker and the impulse responses recorded at
// each ear.
type Point struct {
	Dir         vector.Vec3
	Left, Right []float32
}

// Sphere is a set of head-related impulse responses measured on a sphere
// around the listener's head. The renderer looks up the point nearest the
// source direction each tick and convolves the source against its
// responses. A Sphere is immutable after creation.
type Sphere struct {
	rate   int
	length int
	points []Point
}

// NewSphere validates and assembles a sphere. All responses must share one
// length, and every direction must be normalizable; directions are stored
// normalized.
func NewSphere(rate int, points []Point) (*Sphere, error) {
	if rate <= 0 {
		return nil, ErrBadSampleRate
	}
	if len(points) == 0 {
		return nil, ErrEmptySphere
	}

	length := len(points[0].Left)
	if length == 0 {
		return nil, ErrBadResponseLength
	}
	for i := range points {
		if len(points[i].Left) != length || len(points[i].Right) != length {
			return nil, ErrBadResponseLength
		}
		dir, ok := points[i].Dir.Normalized()
		if !ok {
			return nil, ErrBadDirection
		}
		points[i].Dir = dir
	}

	return &Sphere{
		rate:   rate,
		length: length,
		points: points,
	}, nil
}

// SampleRate the responses were recorded at.
func (s *Sphere) SampleRate() int { return s.rate }

// Length of each impulse response in samples.
func (s *Sphere) Length() int { return s.length }

// Len is the number of measured directions.
func (s *Sphere) Len() int { return len(s.points) }

// Point returns the i-th measured direction.
func (s *Sphere) Point(i int) *Point { return &s.points[i] }

// Nearest returns the index of the point whose direction is closest to
// dir (greatest dot product). dir should be a unit vector.
func (s *Sphere) Nearest(dir vector.Vec3) int {
	best := 0
	bestDot := float32(-2)
	for i := range s.points {
		if d := dir.Dot(s.points[i].Dir); d > bestDot {
			bestDot = d
			best = i
		}
	}
	return best
}

// Resampled returns a copy of the sphere with every response brought to
// targetRate, so a sphere recorded at one rate can drive a context running
// at another. Returns the receiver unchanged when the rates already match.
func (s *Sphere) Resampled(targetRate int) (*Sphere, error) {
	if targetRate == s.rate {
		return s, nil
	}

	outLen := s.length * targetRate / s.rate
	if outLen == 0 {
		outLen = 1
	}

	points := make([]Point, len(s.points))
	for i := range s.points {
		left, err := resampleResponse(s.points[i].Left, s.rate, targetRate, outLen)
		if err != nil {
			return nil, err
		}
		right, err := resampleResponse(s.points[i].Right, s.rate, targetRate, outLen)
		if err != nil {
			return nil, err
		}
		points[i] = Point{Dir: s.points[i].Dir, Left: left, Right: right}
	}

	return NewSphere(targetRate, points)
}

// memSource exposes an in-memory response as a mono audio.Source so the
// streaming resampler can be reused for filter coefficients.
type memSource struct {
	samples []float32
	rate    int
	pos     int
}

func (m *memSource) SampleRate() int { return m.rate }
func (m *memSource) Channels() int   { return 1 }
func (m *memSource) Close() error    { return nil }

func (m *memSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= len(m.samples) {
		return 0, io.EOF
	}
	n := copy(dst, m.samples[m.pos:])
	m.pos += n
	if m.pos >= len(m.samples) {
		return n, io.EOF
	}
	return n, nil
}

// resampleResponse converts one response to targetRate, trimming or
// zero-padding to outLen so all responses of a sphere stay equal length.
func resampleResponse(in []float32, rate, targetRate, outLen int) ([]float32, error) {
	r := audio.NewResampler(&memSource{samples: in, rate: rate}, targetRate)

	out := make([]float32, 0, outLen)
	buf := make([]float32, 512)
	for {
		n, err := r.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	if len(out) > outLen {
		out = out[:outLen]
	}
	for len(out) < outLen {
		out = append(out, 0)
	}
	return out, nil
}
