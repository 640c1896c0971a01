// SPDX-License-Identifier: EPL-2.0

package renderer

import (
	"math"
	"testing"

	"github.com/ik5/soundscape/buffer"
	"github.com/ik5/soundscape/listener"
	"github.com/ik5/soundscape/source"
	"github.com/ik5/soundscape/vector"
)

func monoSource(t *testing.T, samples ...float32) *source.Generic {
	t.Helper()
	b, err := buffer.New(samples, 1, 44100)
	if err != nil {
		t.Fatalf("buffer.New() error = %v", err)
	}
	g, err := source.NewGeneric(b)
	if err != nil {
		t.Fatalf("source.NewGeneric() error = %v", err)
	}
	g.Play()
	return g
}

func stereoSource(t *testing.T, samples ...float32) *source.Generic {
	t.Helper()
	b, err := buffer.New(samples, 2, 44100)
	if err != nil {
		t.Fatalf("buffer.New() error = %v", err)
	}
	g, err := source.NewGeneric(b)
	if err != nil {
		t.Fatalf("source.NewGeneric() error = %v", err)
	}
	g.Play()
	return g
}

func spatialSource(t *testing.T, pos vector.Vec3, samples ...float32) *source.Spatial {
	t.Helper()
	b, err := buffer.New(samples, 1, 44100)
	if err != nil {
		t.Fatalf("buffer.New() error = %v", err)
	}
	s, err := source.NewSpatial(b)
	if err != nil {
		t.Fatalf("source.NewSpatial() error = %v", err)
	}
	s.SetPosition(pos)
	s.Play()
	return s
}

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

// The reference interpolation scenario: buffer length 4, previous gain 0,
// target 1, unit input. Expected effective gains are t = 0, 0.25, 0.5,
// 0.75.
func TestDefault_GainRamp(t *testing.T) {
	t.Parallel()

	g := monoSource(t, 1, 1, 1, 1)
	g.SetLastGain(0, 0)
	g.Fetch(4)

	mix := make([][2]float32, 4)
	Default{}.RenderSource(g, listener.New(), source.DistanceNone, mix)

	want := []float32{0, 0.25, 0.5, 0.75}
	for i := range want {
		if !almostEqual(mix[i][0], want[i]) {
			t.Errorf("mix[%d] left = %v, want %v", i, mix[i][0], want[i])
		}
		if !almostEqual(mix[i][1], want[i]) {
			t.Errorf("mix[%d] right = %v, want %v", i, mix[i][1], want[i])
		}
	}
}

// A source rendered for the first time has no previous gain, so the ramp
// collapses and the whole tick comes out at the target gain.
func TestDefault_FirstTickIsFlat(t *testing.T) {
	t.Parallel()

	g := monoSource(t, 1, 1, 1, 1)
	g.SetGain(0.5)
	g.Fetch(4)

	mix := make([][2]float32, 4)
	Default{}.RenderSource(g, listener.New(), source.DistanceNone, mix)

	for i := range mix {
		if !almostEqual(mix[i][0], 0.5) || !almostEqual(mix[i][1], 0.5) {
			t.Errorf("mix[%d] = %v, want flat 0.5", i, mix[i])
		}
	}
}

// An unchanged gain between consecutive ticks interpolates to itself:
// output equals flat-gain mixing.
func TestDefault_SteadyStateIdentity(t *testing.T) {
	t.Parallel()

	g := monoSource(t, 1, 1, 1, 1, 1, 1, 1, 1)
	g.SetGain(0.8)
	lst := listener.New()

	g.Fetch(4)
	mix := make([][2]float32, 4)
	Default{}.RenderSource(g, lst, source.DistanceNone, mix)

	g.Fetch(4)
	mix2 := make([][2]float32, 4)
	Default{}.RenderSource(g, lst, source.DistanceNone, mix2)

	for i := range mix2 {
		if !almostEqual(mix2[i][0], 0.8) {
			t.Errorf("second tick mix[%d] = %v, want flat 0.8", i, mix2[i][0])
		}
	}
}

// After a render the stored last gain is exactly the new target, ready to
// seed the next tick.
func TestDefault_LastGainPostcondition(t *testing.T) {
	t.Parallel()

	g := monoSource(t, 1, 1)
	g.SetGain(0.6)
	g.SetPanning(0.5)
	g.Fetch(2)

	Default{}.RenderSource(g, listener.New(), source.DistanceNone, make([][2]float32, 2))

	l, r, ok := g.LastGain()
	if !ok {
		t.Fatal("LastGain() unset after render")
	}
	if !almostEqual(l, 0.6*1.5) || !almostEqual(r, 0.6*0.5) {
		t.Errorf("LastGain() = (%v, %v), want (0.9, 0.3)", l, r)
	}
}

// Rendering accumulates: sources sum into the buffer in any order, and
// the combined result equals the sum of solo renders.
func TestDefault_Superposition(t *testing.T) {
	t.Parallel()

	render := func(order ...float32) [][2]float32 {
		mix := make([][2]float32, 4)
		for _, gain := range order {
			g := monoSource(t, 1, 1, 1, 1)
			g.SetGain(gain)
			g.Fetch(4)
			Default{}.RenderSource(g, listener.New(), source.DistanceNone, mix)
		}
		return mix
	}

	ab := render(0.3, 0.4)
	ba := render(0.4, 0.3)
	a := render(0.3)
	b := render(0.4)

	for i := range ab {
		if !almostEqual(ab[i][0], ba[i][0]) {
			t.Errorf("order dependence at %d: %v vs %v", i, ab[i][0], ba[i][0])
		}
		if !almostEqual(ab[i][0], a[i][0]+b[i][0]) {
			t.Errorf("superposition failed at %d: %v, want %v", i, ab[i][0], a[i][0]+b[i][0])
		}
	}
}

// The mixer adds into whatever is already in the buffer, never overwrites.
func TestDefault_AccumulatesIntoExistingContent(t *testing.T) {
	t.Parallel()

	g := monoSource(t, 1, 1)
	g.Fetch(2)

	mix := [][2]float32{{0.1, 0.2}, {0.1, 0.2}}
	Default{}.RenderSource(g, listener.New(), source.DistanceNone, mix)

	if !almostEqual(mix[0][0], 1.1) || !almostEqual(mix[0][1], 1.2) {
		t.Errorf("mix[0] = %v, want {1.1 1.2}", mix[0])
	}
}

func TestDefault_Panning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                string
		panning             float32
		wantLeft, wantRight float32
	}{
		{"center", 0, 1, 1},
		{"fully left", 1, 2, 0},
		{"fully right", -1, 0, 2},
		{"half left", 0.5, 1.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := monoSource(t, 1, 1)
			g.SetPanning(tt.panning)
			g.Fetch(2)

			mix := make([][2]float32, 2)
			Default{}.RenderSource(g, listener.New(), source.DistanceNone, mix)

			if !almostEqual(mix[0][0], tt.wantLeft) {
				t.Errorf("left = %v, want %v", mix[0][0], tt.wantLeft)
			}
			if !almostEqual(mix[0][1], tt.wantRight) {
				t.Errorf("right = %v, want %v", mix[0][1], tt.wantRight)
			}
		})
	}
}

// A spatial source combines distance attenuation with directional panning.
func TestDefault_SpatialSource(t *testing.T) {
	t.Parallel()

	lst := listener.New()

	// On the ear axis at the reference distance: no attenuation, fully
	// left.
	s := spatialSource(t, vector.Vec3{X: 1}, 1, 1)
	s.Fetch(2)

	mix := make([][2]float32, 2)
	Default{}.RenderSource(s, lst, source.DistanceInverse, mix)

	if !almostEqual(mix[0][0], 2) || !almostEqual(mix[0][1], 0) {
		t.Errorf("mix[0] = %v, want {2 0}", mix[0])
	}

	// Ten units ahead with inverse falloff: attenuated, centered.
	far := spatialSource(t, vector.Vec3{Z: 10}, 1, 1)
	far.Fetch(2)

	mix = make([][2]float32, 2)
	Default{}.RenderSource(far, lst, source.DistanceInverse, mix)

	wantGain := float32(1.0 / 10.0)
	if !almostEqual(mix[0][0], wantGain) || !almostEqual(mix[0][1], wantGain) {
		t.Errorf("mix[0] = %v, want {%v %v}", mix[0], wantGain, wantGain)
	}
}

// A stereo source keeps its own channel image: raw left to the left
// channel, raw right to the right.
func TestDefault_StereoKeepsChannels(t *testing.T) {
	t.Parallel()

	g := stereoSource(t, 1, 0, 1, 0)
	g.Fetch(2)

	mix := make([][2]float32, 2)
	Default{}.RenderSource(g, listener.New(), source.DistanceNone, mix)

	if !almostEqual(mix[0][0], 1) || !almostEqual(mix[0][1], 0) {
		t.Errorf("mix[0] = %v, want {1 0}", mix[0])
	}
}

// A short final tick (source ran out mid-buffer) must not write past the
// available frames.
func TestDefault_ShortTick(t *testing.T) {
	t.Parallel()

	g := monoSource(t, 1)
	g.Fetch(4) // zero-pads past the single frame

	mix := make([][2]float32, 4)
	Default{}.RenderSource(g, listener.New(), source.DistanceNone, mix)

	if !almostEqual(mix[0][0], 1) {
		t.Errorf("mix[0] left = %v, want 1", mix[0][0])
	}
	for i := 1; i < 4; i++ {
		if mix[i][0] != 0 || mix[i][1] != 0 {
			t.Errorf("mix[%d] = %v, want silence", i, mix[i])
		}
	}
}
