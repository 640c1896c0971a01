// SPDX-License-Identifier: EPL-2.0

package renderer

import (
	"github.com/ik5/soundscape/listener"
	"github.com/ik5/soundscape/source"
	"github.com/ik5/soundscape/utils"
)

// Renderer turns one source's current tick into stereo output, accumulated
// into the shared mix buffer. Exactly one renderer is active per context;
// switching variants is a context-level operation between ticks.
type Renderer interface {
	// RenderSource accumulates the source's prepared frame samples into
	// mix. It never overwrites: multiple sources sum into one buffer.
	RenderSource(src source.Source, lst *listener.Listener, model source.DistanceModel, mix [][2]float32)

	// Purge drops any per-source render state. Called when a source stops
	// or is removed from the context.
	Purge(src source.Source)
}

// Default is the stateless panning renderer.
type Default struct{}

func (Default) RenderSource(src source.Source, lst *listener.Listener, model source.DistanceModel, mix [][2]float32) {
	renderSourceDefault(src, lst, model, mix)
}

func (Default) Purge(source.Source) {}

// renderWithParams accumulates the source's frame samples into mix,
// interpolating the gain linearly from the previous tick's value to the
// new target. Interpolation matters: a gain step between ticks is an
// audible click. A source rendered for the first time has no previous
// gain and starts at the target, so its first tick comes out flat.
func renderWithParams(g *source.Generic, leftGain, rightGain float32, mix [][2]float32) {
	if len(mix) == 0 {
		return
	}

	step := 1 / float32(len(mix))

	lastLeft, lastRight, ok := g.LastGain()
	if !ok {
		lastLeft, lastRight = leftGain, rightGain
	}

	frames := g.FrameSamples()
	n := len(mix)
	if len(frames) < n {
		n = len(frames)
	}

	t := float32(0)
	for i := 0; i < n; i++ {
		mix[i][0] += utils.Lerpf(lastLeft, leftGain, t) * frames[i][0]
		mix[i][1] += utils.Lerpf(lastRight, rightGain, t) * frames[i][1]
		t += step
	}
}

// renderSourceDefault computes the target left/right gain for the source
// and mixes it through the interpolating accumulator. Afterwards the
// source's last gain holds this tick's target, seeding the next tick.
func renderSourceDefault(src source.Source, lst *listener.Listener, model source.DistanceModel, mix [][2]float32) {
	switch s := src.(type) {
	case *source.Spatial:
		distanceGain := s.DistanceGain(lst, model)
		panning := s.Panning(lst)
		gain := distanceGain * s.Gain()
		leftGain := gain * (1 + panning)
		rightGain := gain * (1 - panning)

		g := s.Base()
		renderWithParams(g, leftGain, rightGain, mix)
		g.SetLastGain(leftGain, rightGain)

	case *source.Generic:
		gain := s.Gain()
		panning := s.Panning()
		leftGain := gain * (1 + panning)
		rightGain := gain * (1 - panning)

		renderWithParams(s, leftGain, rightGain, mix)
		s.SetLastGain(leftGain, rightGain)
	}
}
