// SPDX-License-Identifier: EPL-2.0

// Package aiff wraps github.com/go-audio/aiff behind the audio.Source
// interface. Only 16-bit PCM AIFF is supported.
package aiff
