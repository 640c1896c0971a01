// SPDX-License-Identifier: EPL-2.0

package soundscape

import (
	"github.com/ik5/soundscape/utils"
)

// RenderPCM16 renders the given number of ticks, tickFrames frames each, and
// collects the output as interleaved stereo 16-bit PCM, ready for a WAV
// writer or an output device. It drives the context the same way a device
// callback would, one tick at a time.
//
// Example:
//
//	ctx, _ := soundscape.NewContext(44100)
//	// ... add sources ...
//	pcm := soundscape.RenderPCM16(ctx, 100, 441) // one second
//	wav.WriteWAV16(out, 44100, 2, pcm)
func RenderPCM16(ctx *Context, ticks, tickFrames int) []int16 {
	mix := make([][2]float32, tickFrames)
	out := make([]int16, 0, ticks*tickFrames*2)

	for t := 0; t < ticks; t++ {
		for i := range mix {
			mix[i] = [2]float32{}
		}
		ctx.Render(mix)

		for _, frame := range mix {
			out = append(out, utils.Float32ToInt16(frame[0]), utils.Float32ToInt16(frame[1]))
		}
	}

	return out
}
