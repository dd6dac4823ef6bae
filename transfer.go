// SPDX-License-Identifier: EPL-2.0

package pcmbuf

import (
	"fmt"

	"github.com/ik5/pcmbuf/bridge"
	"github.com/ik5/pcmbuf/buffer"
	"github.com/ik5/pcmbuf/utils"
)

// Transfer moves samples from src (starting at srcStart) into dst.
//
// When the two buffers agree on channel count it is a plain CopyTo,
// clamped to dst's free room. When they disagree, conv bridges the gap;
// a nil conv falls back to a default bridge that remixes channels and
// converts formats but leaves the sample rate alone.
//
// Returns the number of samples per channel written to dst.
func Transfer(dst, src *buffer.Buffer, srcStart int, conv buffer.Converter) (int, error) {
	if dst == nil || src == nil {
		return 0, fmt.Errorf("%w: nil buffer", buffer.ErrInvalidArgument)
	}

	if src.Channels() == dst.Channels() {
		return src.CopyTo(dst, srcStart)
	}

	if conv == nil {
		conv = bridge.New()
	}

	return conv.Convert(src, srcStart, dst, dst.Samples())
}

// ResampleToMono16 is a high-level convenience that collapses a buffer
// to mono, resamples it from srcRate to targetRate, and returns the
// result as 16-bit PCM.
//
// Returns the PCM samples, the output sample rate (always targetRate),
// and any error from the conversion pipeline.
func ResampleToMono16(src *buffer.Buffer, srcRate, targetRate int) ([]int16, int, error) {
	if src == nil {
		return nil, targetRate, fmt.Errorf("%w: nil buffer", buffer.ErrInvalidArgument)
	}
	if srcRate <= 0 || targetRate <= 0 {
		return nil, targetRate, fmt.Errorf("%w: rates %d -> %d", buffer.ErrInvalidArgument, srcRate, targetRate)
	}

	// Worst case one extra sample from the rate ratio rounding.
	capacity := src.Samples()*targetRate/srcRate + 1

	mono, err := buffer.Allocate(buffer.BufferInfo{Format: buffer.F32, Channels: 1, Alignment: 1}, capacity)
	if err != nil {
		return nil, targetRate, err
	}
	defer mono.Close()

	br := bridge.New(bridge.WithRates(srcRate, targetRate))
	if _, err := br.Convert(src, 0, mono, 0); err != nil {
		return nil, targetRate, fmt.Errorf("%w", err)
	}

	frames, err := bridge.Frames(mono, 0, mono.Samples())
	if err != nil {
		return nil, targetRate, fmt.Errorf("%w", err)
	}

	pcm16 := make([]int16, len(frames))
	for i, v := range frames {
		pcm16[i] = utils.Float32ToInt16(v)
	}

	return pcm16, targetRate, nil
}
