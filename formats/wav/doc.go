// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes PCM 16-bit WAV streams.
//
// The decoder walks RIFF chunks and tolerates non-audio chunks (LIST,
// fact, cue) before the data chunk. Only uncompressed 16-bit PCM is
// accepted; other encodings return ErrOnlyPCM16bitSupported.
//
//	src, err := wav.Decoder{}.Decode(file)
//
// WriteWAV16 is the matching writer, used for example to persist a
// rendered soundscape:
//
//	err := wav.WriteWAV16(out, 44100, 2, pcm)
package wav
