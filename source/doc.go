// SPDX-License-Identifier: EPL-2.0

// Package source defines the sound sources the renderer consumes.
//
// A Generic source plays a decoded buffer with a gain and a panning
// scalar. A Spatial source wraps the same payload and adds a 3D position
// plus attenuation parameters; its effective gain and panning are derived
// from the listener every tick.
//
// Sources are created when playback starts and dropped when it stops:
//
//	buf, _ := buffer.FromSourceRate(decoded, 44100)
//	src, _ := source.NewSpatial(buf)
//	src.SetPosition(vector.Vec3{X: 2, Z: 1})
//	src.Play()
//
// Each tick the owning context calls Fetch to prepare the source's frame
// samples, then hands the source to the renderer. The renderer reads the
// frames and the stored last-gain pair, and writes the new last gain back;
// everything else on the source belongs to the caller.
package source
