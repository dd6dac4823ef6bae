// SPDX-License-Identifier: EPL-2.0

package bridge

import (
	"fmt"

	"github.com/ik5/pcmbuf/buffer"
	"github.com/ik5/pcmbuf/utils"
)

// Bridge converts between buffers a plain byte copy cannot connect:
// different channel counts, different numeric types, and optionally
// different sample rates. It implements buffer.Converter, so it can be
// attached to a buffer with SetConverter and picked up by CopyTo when
// the channel counts differ.
//
// Remixing averages the source channels down and duplicates them up.
// Resampling uses cubic interpolation with a simple one-pole low-pass
// when downsampling.
type Bridge struct {
	srcRate int
	dstRate int

	// One-pole low-pass coefficient applied before downsampling.
	filterAlpha float32
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithRates enables sample-rate conversion from src to dst Hz. Without
// this option the bridge only remixes channels and converts formats.
func WithRates(src, dst int) Option {
	return func(b *Bridge) {
		b.srcRate = src
		b.dstRate = dst
	}
}

// New creates a Bridge.
func New(opts ...Option) *Bridge {
	b := &Bridge{filterAlpha: 0.5}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Convert reads every sample of src from srcStart on, remixes and
// resamples as configured, and appends the result to dst in dst's own
// sample format. dstStart must equal dst's current sample count: the
// bridge appends, it does not overwrite. The produced count is clamped
// to dst's available room and returned.
func (br *Bridge) Convert(src *buffer.Buffer, srcStart int, dst *buffer.Buffer, dstStart int) (int, error) {
	if src == nil || dst == nil {
		return 0, fmt.Errorf("%w: nil buffer", buffer.ErrInvalidArgument)
	}
	if srcStart < 0 || srcStart > src.Samples() {
		return 0, fmt.Errorf("%w: source start %d out of range [0, %d]", buffer.ErrInvalidArgument, srcStart, src.Samples())
	}
	if dstStart != dst.Samples() {
		return 0, fmt.Errorf("%w: destination start %d, bridge appends at %d", buffer.ErrInvalidArgument, dstStart, dst.Samples())
	}

	frames, err := Frames(src, srcStart, src.Samples()-srcStart)
	if err != nil {
		return 0, err
	}

	frames = remix(frames, src.Channels(), dst.Channels())

	if br.srcRate > 0 && br.dstRate > 0 && br.srcRate != br.dstRate {
		frames = br.resample(frames, dst.Channels())
	}

	room := dst.Available() * dst.Channels()
	if len(frames) > room {
		frames = frames[:room]
	}

	return Append(dst, frames)
}

// remix converts interleaved frames from srcCh to dstCh channels.
// Multi-channel sources collapse to mono by averaging; the mono signal
// is then duplicated across the destination channels.
func remix(frames []float32, srcCh, dstCh int) []float32 {
	if srcCh == dstCh {
		return frames
	}

	n := len(frames) / srcCh
	mono := make([]float32, n)

	switch srcCh {
	case 1:
		copy(mono, frames)
	case 2: // Stereo (most common)
		for f := range n {
			idx := f << 1
			mono[f] = (frames[idx] + frames[idx+1]) * 0.5
		}
	default:
		inv := float32(1.0) / float32(srcCh)
		for f := range n {
			sum := float32(0)
			base := f * srcCh
			for c := range srcCh {
				sum += frames[base+c]
			}
			mono[f] = sum * inv
		}
	}

	if dstCh == 1 {
		return mono
	}

	out := make([]float32, n*dstCh)
	for f := range n {
		for c := range dstCh {
			out[f*dstCh+c] = mono[f]
		}
	}

	return out
}

// resample converts interleaved frames from srcRate to dstRate using
// Catmull-Rom cubic interpolation over a 4-frame window, clamping at
// the edges.
func (br *Bridge) resample(frames []float32, channels int) []float32 {
	n := len(frames) / channels
	if n == 0 {
		return nil
	}

	ratio := float64(br.srcRate) / float64(br.dstRate)

	if ratio > 1 {
		br.lowPass(frames, channels)
	}

	outFrames := int(float64(n) * float64(br.dstRate) / float64(br.srcRate))
	out := make([]float32, outFrames*channels)

	frame := func(i, c int) float32 {
		if i < 0 {
			i = 0
		}
		if i >= n {
			i = n - 1
		}
		return frames[i*channels+c]
	}

	for i := range outFrames {
		pos := float64(i) * ratio
		base := int(pos)
		alpha := float32(pos - float64(base))

		for c := range channels {
			y0 := frame(base-1, c)
			y1 := frame(base, c)
			y2 := frame(base+1, c)
			y3 := frame(base+2, c)
			out[i*channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}
	}

	return out
}

// lowPass applies a one-pole filter per channel in place, a cheap
// anti-aliasing step before downsampling.
func (br *Bridge) lowPass(frames []float32, channels int) {
	n := len(frames) / channels

	state := make([]float32, channels)
	for c := range channels {
		state[c] = frames[c]
	}

	for f := range n {
		for c := range channels {
			v := br.filterAlpha*frames[f*channels+c] + (1-br.filterAlpha)*state[c]
			frames[f*channels+c] = v
			state[c] = v
		}
	}
}
