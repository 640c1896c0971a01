// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want int16
	}{
		{"silence", 0.0, 0},
		{"full positive", 1.0, 32767},
		{"full negative", -1.0, -32767},
		{"half positive", 0.5, 16383},
		{"clamp above", 2.5, 32767},
		{"clamp below", -2.5, -32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Float32ToInt16(tt.in)
			if got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestCubicInterpolate_Endpoints(t *testing.T) {
	t.Parallel()

	if got := CubicInterpolate(0, 1, 2, 3, 0); got != 1 {
		t.Errorf("CubicInterpolate at x=0 = %v, want y1=1", got)
	}
	if got := CubicInterpolate(0, 1, 2, 3, 1); got != 2 {
		t.Errorf("CubicInterpolate at x=1 = %v, want y2=2", got)
	}
}
