// SPDX-License-Identifier: EPL-2.0

package renderer

import (
	"errors"

	"github.com/ik5/soundscape/hrir"
	"github.com/ik5/soundscape/listener"
	"github.com/ik5/soundscape/source"
	"github.com/ik5/soundscape/utils"
)

var ErrNilSphere = errors.New("hrtf renderer needs an HRIR sphere")

// HrtfRenderer spatializes mono spatial sources by convolving them with
// the head-related impulse responses of the direction they arrive from.
// Sources it cannot handle fall back to the Default path: stereo material
// already carries its own channel image, and a source without a position
// has no direction to spatialize.
type HrtfRenderer struct {
	sphere *hrir.Sphere

	// One convolution slot per source, created on first binaural render
	// and purged when the source stops. The slot carries the input tail
	// the next tick's convolution reaches back into.
	slots map[*source.Generic]*hrtfSlot

	// Scratch buffers reused across renders to keep the hot path free of
	// allocations after warmup.
	input               []float32
	outLeft, outRight   []float32
	prevLeft, prevRight []float32
}

type hrtfSlot struct {
	history   []float32 // last Length()-1 input samples
	prevPoint int       // sphere point convolved last tick, -1 initially
}

func NewHrtfRenderer(sphere *hrir.Sphere) (*HrtfRenderer, error) {
	if sphere == nil {
		return nil, ErrNilSphere
	}
	return &HrtfRenderer{
		sphere: sphere,
		slots:  make(map[*source.Generic]*hrtfSlot),
	}, nil
}

// Sphere returns the dataset the renderer convolves against.
func (h *HrtfRenderer) Sphere() *hrir.Sphere { return h.sphere }

func (h *HrtfRenderer) RenderSource(src source.Source, lst *listener.Listener, model source.DistanceModel, mix [][2]float32) {
	sp, ok := src.(*source.Spatial)
	if !ok || !src.Base().IsMono() {
		renderSourceDefault(src, lst, model, mix)
		return
	}
	h.renderBinaural(sp, lst, model, mix)
}

// Purge drops the convolution slot of a stopped or removed source.
func (h *HrtfRenderer) Purge(src source.Source) {
	delete(h.slots, src.Base())
}

// SlotCount reports how many sources currently hold convolution state.
func (h *HrtfRenderer) SlotCount() int { return len(h.slots) }

func (h *HrtfRenderer) renderBinaural(sp *source.Spatial, lst *listener.Listener, model source.DistanceModel, mix [][2]float32) {
	if len(mix) == 0 {
		return
	}

	g := sp.Base()

	// Direction from the head to the source selects the responses. A
	// source sitting on the listener has no direction; treat it as dead
	// ahead.
	dir, ok := sp.Position().Sub(lst.Position()).Normalized()
	if !ok {
		dir = lst.LookAxis()
	}
	idx := h.sphere.Nearest(dir)
	pt := h.sphere.Point(idx)

	slot := h.slots[g]
	if slot == nil {
		slot = &hrtfSlot{
			history:   make([]float32, h.sphere.Length()-1),
			prevPoint: -1,
		}
		h.slots[g] = slot
	}

	frames := g.FrameSamples()
	n := len(mix)
	if len(frames) < n {
		n = len(frames)
	}

	// Extended input: the previous tick's tail followed by this tick's
	// mono samples, so the convolution is seamless across ticks.
	histLen := len(slot.history)
	h.input = append(h.input[:0], slot.history...)
	for i := 0; i < n; i++ {
		h.input = append(h.input, frames[i][0])
	}

	h.outLeft = grow(h.outLeft, n)
	h.outRight = grow(h.outRight, n)
	convolve(h.outLeft, h.input, pt.Left, histLen)
	convolve(h.outRight, h.input, pt.Right, histLen)

	// A direction change swaps the impulse response; crossfading the old
	// and new convolution across the tick avoids a spatial click, the
	// filter-domain twin of the gain interpolation in renderWithParams.
	if slot.prevPoint >= 0 && slot.prevPoint != idx {
		prev := h.sphere.Point(slot.prevPoint)
		h.prevLeft = grow(h.prevLeft, n)
		h.prevRight = grow(h.prevRight, n)
		convolve(h.prevLeft, h.input, prev.Left, histLen)
		convolve(h.prevRight, h.input, prev.Right, histLen)

		step := 1 / float32(len(mix))
		t := float32(0)
		for i := 0; i < n; i++ {
			h.outLeft[i] = utils.Lerpf(h.prevLeft[i], h.outLeft[i], t)
			h.outRight[i] = utils.Lerpf(h.prevRight[i], h.outRight[i], t)
			t += step
		}
	}

	// The binaural path carries no panning: direction is already in the
	// responses. Distance and source gain still apply, with the same
	// click-free interpolation as the default path.
	gain := sp.DistanceGain(lst, model) * g.Gain()
	lastLeft, lastRight, ok := g.LastGain()
	if !ok {
		lastLeft, lastRight = gain, gain
	}

	step := 1 / float32(len(mix))
	t := float32(0)
	for i := 0; i < n; i++ {
		mix[i][0] += utils.Lerpf(lastLeft, gain, t) * h.outLeft[i]
		mix[i][1] += utils.Lerpf(lastRight, gain, t) * h.outRight[i]
		t += step
	}
	g.SetLastGain(gain, gain)

	if histLen > 0 {
		copy(slot.history, h.input[len(h.input)-histLen:])
	}
	slot.prevPoint = idx
}

// convolve writes n direct-form convolution outputs into dst: dst[i] is
// the dot product of ir against the input window ending at histLen+i.
func convolve(dst, input, ir []float32, histLen int) {
	for i := range dst {
		var acc float32
		base := histLen + i
		for k := range ir {
			acc += ir[k] * input[base-k]
		}
		dst[i] = acc
	}
}

func grow(buf []float32, n int) []float32 {
	if cap(buf) < n {
		return make([]float32, n)
	}
	return buf[:n]
}
