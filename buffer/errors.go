// SPDX-License-Identifier: EPL-2.0

package buffer

import "errors"

var (
	ErrBadChannelCount = errors.New("buffer must be mono or stereo")
	ErrBadSampleRate   = errors.New("sample rate must be positive")
	ErrPartialFrame    = errors.New("sample count must be multiple of channels")
)
