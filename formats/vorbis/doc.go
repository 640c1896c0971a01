// SPDX-License-Identifier: EPL-2.0

// Package vorbis wraps github.com/jfreymuth/oggvorbis behind the
// audio.Source interface.
package vorbis
