// SPDX-License-Identifier: EPL-2.0

package bridge

import (
	"fmt"

	"github.com/ik5/pcmbuf/buffer"
	"github.com/ik5/pcmbuf/utils"
)

// Frames reads n samples per channel starting at start and returns them
// as interleaved float32 frames normalized to [-1, 1], whatever the
// buffer's own sample format and layout.
func Frames(b *buffer.Buffer, start, n int) ([]float32, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil buffer", buffer.ErrInvalidArgument)
	}
	if start < 0 || n < 0 || start+n > b.Samples() {
		return nil, fmt.Errorf("%w: range [%d, %d) of %d samples", buffer.ErrInvalidArgument, start, start+n, b.Samples())
	}

	channels := b.Channels()
	out := make([]float32, n*channels)

	switch b.Format().AsPacked() {
	case buffer.U8:
		tmp := make([]uint8, n*channels)
		if _, err := buffer.ExtractSamples(b, tmp, start); err != nil {
			return nil, err
		}
		for i, v := range tmp {
			out[i] = utils.Uint8ToFloat32(v)
		}
	case buffer.S16:
		tmp := make([]int16, n*channels)
		if _, err := buffer.ExtractSamples(b, tmp, start); err != nil {
			return nil, err
		}
		for i, v := range tmp {
			out[i] = utils.Int16ToFloat32(v)
		}
	case buffer.S32:
		tmp := make([]int32, n*channels)
		if _, err := buffer.ExtractSamples(b, tmp, start); err != nil {
			return nil, err
		}
		for i, v := range tmp {
			out[i] = utils.Int32ToFloat32(v)
		}
	case buffer.S64:
		tmp := make([]int64, n*channels)
		if _, err := buffer.ExtractSamples(b, tmp, start); err != nil {
			return nil, err
		}
		for i, v := range tmp {
			out[i] = utils.Int64ToFloat32(v)
		}
	case buffer.F32:
		if _, err := buffer.ExtractSamples(b, out, start); err != nil {
			return nil, err
		}
	case buffer.F64:
		tmp := make([]float64, n*channels)
		if _, err := buffer.ExtractSamples(b, tmp, start); err != nil {
			return nil, err
		}
		for i, v := range tmp {
			out[i] = float32(v)
		}
	default:
		return nil, fmt.Errorf("%w: sample format %s", buffer.ErrInvalidArgument, b.Format())
	}

	return out, nil
}

// Append converts interleaved normalized float32 frames into b's sample
// format and appends them, clamping to the available room. Returns the
// number of samples per channel appended.
func Append(b *buffer.Buffer, frames []float32) (int, error) {
	if b == nil {
		return 0, fmt.Errorf("%w: nil buffer", buffer.ErrInvalidArgument)
	}

	channels := b.Channels()
	if len(frames)%channels != 0 {
		return 0, buffer.ErrSizeMismatch
	}

	switch b.Format().AsPacked() {
	case buffer.U8:
		tmp := make([]uint8, len(frames))
		for i, v := range frames {
			tmp[i] = utils.Float32ToUint8(v)
		}
		return buffer.AppendSamples(b, tmp)
	case buffer.S16:
		tmp := make([]int16, len(frames))
		for i, v := range frames {
			tmp[i] = utils.Float32ToInt16(v)
		}
		return buffer.AppendSamples(b, tmp)
	case buffer.S32:
		tmp := make([]int32, len(frames))
		for i, v := range frames {
			tmp[i] = utils.Float32ToInt32(v)
		}
		return buffer.AppendSamples(b, tmp)
	case buffer.S64:
		tmp := make([]int64, len(frames))
		for i, v := range frames {
			tmp[i] = utils.Float32ToInt64(v)
		}
		return buffer.AppendSamples(b, tmp)
	case buffer.F32:
		return buffer.AppendSamples(b, frames)
	case buffer.F64:
		tmp := make([]float64, len(frames))
		for i, v := range frames {
			tmp[i] = float64(v)
		}
		return buffer.AppendSamples(b, tmp)
	default:
		return 0, fmt.Errorf("%w: sample format %s", buffer.ErrInvalidArgument, b.Format())
	}
}
