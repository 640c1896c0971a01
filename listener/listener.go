// SPDX-License-Identifier: EPL-2.0

// Package listener models the point of hearing in a soundscape: a position
// and an orthonormal orientation basis. Spatial sources compute distance
// attenuation and directional panning relative to it. The renderer treats
// it as read-only; mutation belongs to the owning context between ticks.
package listener

import (
	"errors"

	"github.com/ik5/soundscape/vector"
)

var ErrDegenerateBasis = errors.New("look and up axes must be non-zero and non-collinear")

// Listener is the receiver of a rendered scene. The default orientation
// looks along +Z with +Y up; the ear axis points toward the left ear.
type Listener struct {
	position vector.Vec3
	look     vector.Vec3
	up       vector.Vec3
	ear      vector.Vec3
}

func New() *Listener {
	return &Listener{
		look: vector.Vec3{Z: 1},
		up:   vector.Vec3{Y: 1},
		ear:  vector.Vec3{X: 1},
	}
}

func (l *Listener) Position() vector.Vec3 { return l.position }

func (l *Listener) SetPosition(p vector.Vec3) {
	l.position = p
}

func (l *Listener) LookAxis() vector.Vec3 { return l.look }
func (l *Listener) UpAxis() vector.Vec3   { return l.up }

// EarAxis is the unit vector toward the left ear. Directional panning is
// the projection of the source direction onto this axis.
func (l *Listener) EarAxis() vector.Vec3 { return l.ear }

// SetOrientation rebuilds the basis from a look and an up axis. The inputs
// need not be unit length, only non-zero and non-collinear.
func (l *Listener) SetOrientation(look, up vector.Vec3) error {
	lookN, ok := look.Normalized()
	if !ok {
		return ErrDegenerateBasis
	}
	ear, ok := up.Cross(lookN).Normalized()
	if !ok {
		return ErrDegenerateBasis
	}

	l.look = lookN
	l.ear = ear
	// Recompute up so the basis stays orthonormal even for sloppy input.
	l.up = lookN.Cross(ear)
	return nil
}
