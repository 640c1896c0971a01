// SPDX-License-Identifier: EPL-2.0

// Package mp3 wraps github.com/hajimehoshi/go-mp3 behind the audio.Source
// interface. Output is always stereo 16-bit PCM converted to float32.
package mp3
