// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming layer that feeds the renderer:
// decoded PCM sources, a decoder registry, and stream transforms.
//
// # Source Interface
//
// The Source interface is the contract every decoder and transform
// implements:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 in [-1.0, 1.0]. ReadSamples returns
// io.EOF when the stream is finished; transforms chain freely:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 44100))
//
// # Role in the Pipeline
//
// Sources are streaming and one-shot; the renderer needs random access so
// playing sources can loop and restart. The buffer package drains a Source
// into memory once, and sound sources play from that. The hrir package
// uses the Resampler to bring impulse responses to the device rate.
package audio
