// SPDX-License-Identifier: EPL-2.0

package source

import (
	"math"

	"github.com/ik5/soundscape/buffer"
	"github.com/ik5/soundscape/listener"
	"github.com/ik5/soundscape/utils"
	"github.com/ik5/soundscape/vector"
)

// Spatial is a sound source positioned in 3D space. Its effective gain and
// panning are derived from the listener each tick instead of being set
// directly.
type Spatial struct {
	Generic

	position      vector.Vec3
	rolloffFactor float32
	refDistance   float32
	maxDistance   float32
}

func NewSpatial(buf *buffer.Buffer) (*Spatial, error) {
	g, err := NewGeneric(buf)
	if err != nil {
		return nil, err
	}
	return &Spatial{
		Generic:       *g,
		rolloffFactor: 1,
		refDistance:   1,
		maxDistance:   math.MaxFloat32,
	}, nil
}

func (s *Spatial) Position() vector.Vec3     { return s.position }
func (s *Spatial) SetPosition(p vector.Vec3) { s.position = p }

func (s *Spatial) RolloffFactor() float32 { return s.rolloffFactor }

// SetRolloffFactor sets how aggressively gain falls off with distance.
// Values below zero are treated as zero.
func (s *Spatial) SetRolloffFactor(f float32) {
	if f < 0 {
		f = 0
	}
	s.rolloffFactor = f
}

func (s *Spatial) ReferenceDistance() float32 { return s.refDistance }

// SetReferenceDistance sets the distance at which attenuation starts;
// inside it the source plays at full gain. Must stay positive.
func (s *Spatial) SetReferenceDistance(d float32) {
	if d > 0 {
		s.refDistance = d
	}
}

func (s *Spatial) MaxDistance() float32 { return s.maxDistance }

// SetMaxDistance caps the distance used by the attenuation curves.
func (s *Spatial) SetMaxDistance(d float32) {
	if d > 0 {
		s.maxDistance = d
	}
}

// DistanceGain evaluates the selected attenuation curve against the
// distance between the source and the listener.
func (s *Spatial) DistanceGain(l *listener.Listener, model DistanceModel) float32 {
	ref := s.refDistance
	max := s.maxDistance
	if max < ref {
		max = ref
	}
	d := utils.Clampf(s.position.Distance(l.Position()), ref, max)

	switch model {
	case DistanceLinear:
		if max == ref {
			return 1
		}
		return utils.Clampf(1-s.rolloffFactor*(d-ref)/(max-ref), 0, 1)
	case DistanceInverse:
		return ref / (ref + s.rolloffFactor*(d-ref))
	case DistanceExponent:
		return float32(math.Pow(float64(d/ref), float64(-s.rolloffFactor)))
	default:
		return 1
	}
}

// Panning projects the direction toward the source onto the listener's
// ear axis: +1 fully left, -1 fully right, 0 for a source on top of the
// listener.
func (s *Spatial) Panning(l *listener.Listener) float32 {
	dir, ok := s.position.Sub(l.Position()).Normalized()
	if !ok {
		return 0
	}
	return utils.Clampf(dir.Dot(l.EarAxis()), -1, 1)
}
