// SPDX-License-Identifier: EPL-2.0

// Package renderer mixes the active sound sources into one stereo buffer
// per processing tick.
//
// Two mutually exclusive renderer variants exist. Default derives a
// left/right gain per source from its gain and panning (plus distance
// attenuation and directional panning for spatial sources) and
// accumulates the source's samples with click-free gain interpolation.
// HrtfRenderer instead convolves mono spatial sources with head-related
// impulse responses for binaural output, falling back to the Default path
// for anything it cannot handle.
//
// All sources of a tick sum additively into the same mix buffer; the
// buffer is owned by the calling context for the duration of the tick and
// the render pass never blocks.
package renderer
