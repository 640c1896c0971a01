// SPDX-License-Identifier: EPL-2.0

package hrir

import "errors"

var (
	ErrBadMagic          = errors.New("not an HRIR sphere stream")
	ErrEmptySphere       = errors.New("sphere needs at least one point")
	ErrBadResponseLength = errors.New("impulse responses must share one non-zero length")
	ErrBadDirection      = errors.New("point direction must be a non-zero vector")
	ErrBadSampleRate     = errors.New("sample rate must be positive")
	ErrNotStereoWAV      = errors.New("HRIR WAV must have exactly two channels")
)
