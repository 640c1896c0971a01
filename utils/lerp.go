// SPDX-License-Identifier: EPL-2.0

package utils

// Lerpf linearly interpolates between a and b.
// t is the interpolation position (t=0 returns a, t=1 returns b).
// t outside [0, 1] extrapolates.
func Lerpf(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Clampf limits x to the range [lo, hi].
func Clampf(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
