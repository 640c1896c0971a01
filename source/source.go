// SPDX-License-Identifier: EPL-2.0

package source

import "errors"

var ErrNilBuffer = errors.New("source needs a buffer to play from")

// Status is the playback state of a source.
type Status int

const (
	Stopped Status = iota
	Playing
	Paused
)

func (s Status) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Source is either a *Generic or a *Spatial sound source. The renderer
// dispatches on the concrete type once per source per tick.
type Source interface {
	// Base returns the common playback payload.
	Base() *Generic
}
