// SPDX-License-Identifier: EPL-2.0

package hrir

import (
	"encoding/binary"
	"fmt"
	"io"

	goawav "github.com/go-audio/wav"

	"github.com/ik5/soundscape/vector"
)

var sphereMagic = [4]byte{'H', 'R', 'I', 'R'}

// Load reads a sphere from its binary form: the magic "HRIR", a uint32
// sample rate, response length and point count, then per point a direction
// (3 float32) followed by the left and right responses. All values are
// little-endian.
func Load(r io.Reader) (*Sphere, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if magic != sphereMagic {
		return nil, ErrBadMagic
	}

	var header struct {
		SampleRate uint32
		Length     uint32
		Count      uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if header.Length == 0 || header.Length > 1<<20 {
		return nil, ErrBadResponseLength
	}
	if header.Count == 0 {
		return nil, ErrEmptySphere
	}

	points := make([]Point, header.Count)
	for i := range points {
		var dir [3]float32
		if err := binary.Read(r, binary.LittleEndian, &dir); err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		left := make([]float32, header.Length)
		right := make([]float32, header.Length)
		if err := binary.Read(r, binary.LittleEndian, left); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, right); err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		points[i] = Point{
			Dir:   vector.Vec3{X: dir[0], Y: dir[1], Z: dir[2]},
			Left:  left,
			Right: right,
		}
	}

	return NewSphere(int(header.SampleRate), points)
}

// Write stores the sphere in the binary form Load reads.
func Write(w io.Writer, s *Sphere) error {
	if _, err := w.Write(sphereMagic[:]); err != nil {
		return fmt.Errorf("%w", err)
	}

	header := struct {
		SampleRate uint32
		Length     uint32
		Count      uint32
	}{
		SampleRate: uint32(s.rate),
		Length:     uint32(s.length),
		Count:      uint32(len(s.points)),
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("%w", err)
	}

	for i := range s.points {
		dir := [3]float32{s.points[i].Dir.X, s.points[i].Dir.Y, s.points[i].Dir.Z}
		if err := binary.Write(w, binary.LittleEndian, dir); err != nil {
			return fmt.Errorf("%w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, s.points[i].Left); err != nil {
			return fmt.Errorf("%w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, s.points[i].Right); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// PointFromWAV builds a sphere point from a stereo measurement WAV, the
// common distribution form of HRIR datasets: the left channel holds the
// left-ear response and the right channel the right-ear response. Returns
// the point and the recording's sample rate.
func PointFromWAV(dir vector.Vec3, r io.ReadSeeker) (Point, int, error) {
	dec := goawav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Point{}, 0, ErrBadMagic
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Point{}, 0, fmt.Errorf("%w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels != 2 {
		return Point{}, 0, ErrNotStereoWAV
	}

	scale := float32(int(1) << (dec.BitDepth - 1))
	frames := len(buf.Data) / 2
	left := make([]float32, frames)
	right := make([]float32, frames)
	for f := 0; f < frames; f++ {
		left[f] = float32(buf.Data[2*f]) / scale
		right[f] = float32(buf.Data[2*f+1]) / scale
	}

	return Point{Dir: dir, Left: left, Right: right}, buf.Format.SampleRate, nil
}
