// SPDX-License-Identifier: EPL-2.0

// Package vector provides the small amount of 3D vector math needed for
// spatial sound: distances between sources and the listener, and
// projections onto the listener's ear axis.
package vector

import "math"

// Vec3 is a 3-component float32 vector.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalized returns v scaled to unit length and true, or the zero vector
// and false when v is too short to carry a direction.
func (v Vec3) Normalized() (Vec3, bool) {
	l := v.Len()
	if l < 1e-6 {
		return Vec3{}, false
	}
	return v.Scale(1 / l), true
}

// Distance returns the euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float32 {
	return v.Sub(o).Len()
}
