// SPDX-License-Identifier: EPL-2.0

package soundscape

import (
	"errors"

	"github.com/ik5/soundscape/listener"
	"github.com/ik5/soundscape/renderer"
	"github.com/ik5/soundscape/source"
)

var ErrBadSampleRate = errors.New("sample rate must be positive")

// Context owns everything needed to render a scene: the sources, the
// listener, the distance model and exactly one renderer variant. It is
// not safe for concurrent use; one render pass runs per tick, driven by
// the output layer, and all mutation happens between ticks on the same
// goroutine.
type Context struct {
	sampleRate int
	sources    []source.Source
	lst        *listener.Listener
	rend       renderer.Renderer
	model      source.DistanceModel
	masterGain float32

	scratch [][2]float32
}

func NewContext(sampleRate int) (*Context, error) {
	if sampleRate <= 0 {
		return nil, ErrBadSampleRate
	}
	return &Context{
		sampleRate: sampleRate,
		lst:        listener.New(),
		rend:       renderer.Default{},
		model:      source.DistanceInverse,
		masterGain: 1,
	}, nil
}

func (c *Context) SampleRate() int { return c.sampleRate }

func (c *Context) Listener() *listener.Listener { return c.lst }

func (c *Context) AddSource(s source.Source) {
	c.sources = append(c.sources, s)
}

// RemoveSource drops the source from the context and purges any render
// state it holds.
func (c *Context) RemoveSource(s source.Source) {
	for i, cur := range c.sources {
		if cur == s {
			c.sources = append(c.sources[:i], c.sources[i+1:]...)
			c.rend.Purge(s)
			return
		}
	}
}

func (c *Context) Sources() []source.Source { return c.sources }

func (c *Context) Renderer() renderer.Renderer { return c.rend }

// SetRenderer switches between the panning and the binaural renderer.
// Must be called between ticks; per-source state of the previous renderer
// is discarded with it.
func (c *Context) SetRenderer(r renderer.Renderer) {
	if r == nil {
		r = renderer.Default{}
	}
	c.rend = r
}

func (c *Context) DistanceModel() source.DistanceModel { return c.model }

func (c *Context) SetDistanceModel(m source.DistanceModel) {
	c.model = m
}

func (c *Context) MasterGain() float32 { return c.masterGain }

// SetMasterGain scales the whole rendered scene. Negative values are
// treated as silence.
func (c *Context) SetMasterGain(gain float32) {
	if gain < 0 {
		gain = 0
	}
	c.masterGain = gain
}

// Render runs one processing tick: every playing source fetches one
// buffer's worth of frame samples and accumulates into mix through the
// active renderer. The contribution is added to mix, scaled by the master
// gain; existing buffer content is preserved. len(mix) is the tick size
// and must be the same for all sources, which it is by construction.
func (c *Context) Render(mix [][2]float32) {
	if len(mix) == 0 {
		return
	}

	if cap(c.scratch) < len(mix) {
		c.scratch = make([][2]float32, len(mix))
	}
	c.scratch = c.scratch[:len(mix)]
	for i := range c.scratch {
		c.scratch[i] = [2]float32{}
	}

	for _, src := range c.sources {
		g := src.Base()
		if g.Status() != source.Playing {
			continue
		}

		g.Fetch(len(mix))
		c.rend.RenderSource(src, c.lst, c.model, c.scratch)

		// A source that exhausted its buffer during the fetch played its
		// tail into this tick; its render state is no longer needed.
		if g.Status() == source.Stopped {
			c.rend.Purge(src)
		}
	}

	for i := range mix {
		mix[i][0] += c.masterGain * c.scratch[i][0]
		mix[i][1] += c.masterGain * c.scratch[i][1]
	}
}
