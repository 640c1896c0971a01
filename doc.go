// SPDX-License-Identifier: EPL-2.0

// Package soundscape renders live audio for a set of concurrently playing
// sound sources into a shared stereo buffer, once per processing tick,
// with per-source gain, stereo panning, distance attenuation and optional
// binaural (HRTF) spatialization.
//
// # Quick Start
//
// Decode a sound, load it into a buffer at the device rate, attach it to
// a source and render:
//
//	f, _ := os.Open("steps.wav")
//	stream, _ := wav.Decoder{}.Decode(f)
//	buf, _ := buffer.FromSourceRate(stream, 44100)
//
//	src, _ := source.NewSpatial(buf)
//	src.SetPosition(vector.Vec3{X: 2, Z: 5})
//	src.Play()
//
//	ctx, _ := soundscape.NewContext(44100)
//	ctx.AddSource(src)
//
//	mix := make([][2]float32, 441) // one 10ms tick at 44.1kHz
//	ctx.Render(mix)
//
// Render is meant to be called from the output device's callback, one
// fixed-size tick at a time. All playing sources accumulate additively
// into the same buffer.
//
// # Renderers
//
// The default renderer pans each source between the two channels. For
// headphone output, an HRTF renderer convolves mono spatial sources with
// head-related impulse responses instead:
//
//	sphere, _ := hrir.Load(sphereFile)
//	sphere, _ = sphere.Resampled(ctx.SampleRate())
//	h, _ := renderer.NewHrtfRenderer(sphere)
//	ctx.SetRenderer(h)
//
// Stereo sources are never convolved; they keep their channel image and
// take the panning path even in HRTF mode.
//
// # Click-Free Gain
//
// Gain changes between ticks are interpolated linearly across the tick,
// per source and channel, so moving a source or turning a volume knob
// never produces an audible step.
//
// # Packages
//
//   - audio: streaming PCM sources, decoder registry, resampler
//   - formats/{wav,mp3,vorbis,aiff}: codec wrappers producing audio.Source
//   - buffer: decoded in-memory sample storage
//   - source: generic and spatial sound sources
//   - listener: the point of hearing
//   - renderer: the per-tick mixing core
//   - hrir: head-related impulse response datasets
package soundscape
