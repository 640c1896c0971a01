// SPDX-License-Identifier: EPL-2.0

// Package hrir loads and organizes head-related impulse response
// datasets.
//
// An HRIR sphere is a set of directions around the head, each carrying the
// impulse response measured at the left and right ear for a sound arriving
// from that direction. The binaural renderer picks the point nearest the
// source direction every tick and convolves the source signal against its
// responses.
//
// Spheres load from the compact binary form written by Write, or can be
// assembled from the stereo measurement WAVs that public datasets ship:
//
//	p, rate, err := hrir.PointFromWAV(dir, wavFile)
//	...
//	sphere, err := hrir.NewSphere(rate, points)
//
// Responses must match the device rate the context renders at; Resampled
// converts a sphere recorded at a different rate.
package hrir
