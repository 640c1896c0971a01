// SPDX-License-Identifier: EPL-2.0

package source

import (
	"github.com/ik5/soundscape/buffer"
	"github.com/ik5/soundscape/utils"
)

// Generic is a sound source without a position: plain gain and panning.
// It owns its playback cursor into the shared buffer, the per-tick frame
// samples, and the left/right gain of the previous render pass, which
// seeds the renderer's gain interpolation.
type Generic struct {
	buf     *buffer.Buffer
	gain    float32
	panning float32
	looping bool
	status  Status
	cursor  int

	// Stereo frame pairs prepared for the current tick; mono material is
	// duplicated into both slots.
	frames [][2]float32

	lastLeft, lastRight float32
	hasLastGain         bool
}

func NewGeneric(buf *buffer.Buffer) (*Generic, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	return &Generic{
		buf:  buf,
		gain: 1,
	}, nil
}

func (g *Generic) Base() *Generic         { return g }
func (g *Generic) Buffer() *buffer.Buffer { return g.buf }

func (g *Generic) Gain() float32        { return g.gain }
func (g *Generic) SetGain(gain float32) { g.gain = gain }

func (g *Generic) Panning() float32 { return g.panning }

// SetPanning steers the source between the channels; +1 is fully left,
// -1 fully right. Out-of-range values are clamped.
func (g *Generic) SetPanning(panning float32) {
	g.panning = utils.Clampf(panning, -1, 1)
}

func (g *Generic) Looping() bool           { return g.looping }
func (g *Generic) SetLooping(looping bool) { g.looping = looping }

func (g *Generic) Status() Status { return g.status }

func (g *Generic) Play() { g.status = Playing }

func (g *Generic) Pause() {
	if g.status == Playing {
		g.status = Paused
	}
}

// Stop halts playback and rewinds to the beginning of the buffer.
func (g *Generic) Stop() {
	g.status = Stopped
	g.cursor = 0
}

// IsMono reports whether the source plays single-channel material, which
// makes it eligible for binaural rendering.
func (g *Generic) IsMono() bool { return g.buf.Channels() == 1 }

// PlaybackFrame is the current cursor position in buffer frames.
func (g *Generic) PlaybackFrame() int { return g.cursor }

// FrameSamples is the stereo sample sequence prepared by the last Fetch.
// It is valid for one tick and may be iterated any number of times.
func (g *Generic) FrameSamples() [][2]float32 { return g.frames }

// Fetch prepares n frames for the current tick and advances the cursor.
// When the buffer runs out, the tail is zero-padded: looping sources wrap
// to the start, others stop. Call once per tick before rendering.
func (g *Generic) Fetch(n int) {
	if cap(g.frames) < n {
		g.frames = make([][2]float32, n)
	}
	g.frames = g.frames[:n]

	total := g.buf.Frames()
	for i := 0; i < n; i++ {
		if g.cursor >= total {
			if g.looping && total > 0 {
				g.cursor = 0
			} else {
				g.status = Stopped
				g.cursor = 0
				for ; i < n; i++ {
					g.frames[i] = [2]float32{}
				}
				return
			}
		}

		if g.buf.Channels() == 1 {
			v := g.buf.At(g.cursor, 0)
			g.frames[i] = [2]float32{v, v}
		} else {
			g.frames[i] = [2]float32{g.buf.At(g.cursor, 0), g.buf.At(g.cursor, 1)}
		}
		g.cursor++
	}
}

// LastGain returns the left/right gain stored by the previous render pass.
// ok is false before the first render; the renderer then starts the
// interpolation at the freshly computed target instead.
func (g *Generic) LastGain() (left, right float32, ok bool) {
	return g.lastLeft, g.lastRight, g.hasLastGain
}

// SetLastGain records this tick's target gain as the next tick's
// interpolation start. The renderer calls it after every render pass.
func (g *Generic) SetLastGain(left, right float32) {
	g.lastLeft = left
	g.lastRight = right
	g.hasLastGain = true
}
