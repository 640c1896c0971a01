// SPDX-License-Identifier: EPL-2.0

package source

// DistanceModel selects the attenuation curve mapping source-to-listener
// distance to a gain multiplier. The curves are evaluated against the
// spatial source's rolloff factor, reference distance and max distance;
// distance is clamped into [reference, max] first.
type DistanceModel int

const (
	// DistanceNone disables attenuation.
	DistanceNone DistanceModel = iota
	// DistanceLinear fades linearly from 1 at the reference distance to 0
	// at the max distance.
	DistanceLinear
	// DistanceInverse uses inverse falloff, the usual physical choice:
	// ref / (ref + rolloff*(d-ref)).
	DistanceInverse
	// DistanceExponent uses (d/ref)^-rolloff.
	DistanceExponent
)

func (m DistanceModel) String() string {
	switch m {
	case DistanceNone:
		return "none"
	case DistanceLinear:
		return "linear"
	case DistanceInverse:
		return "inverse"
	case DistanceExponent:
		return "exponent"
	default:
		return "unknown"
	}
}
