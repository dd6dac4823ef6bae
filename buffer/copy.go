// SPDX-License-Identifier: EPL-2.0

package buffer

import "fmt"

// The four copy primitives. Every same-channel-count copy between two
// layouts reduces to one of these; numeric conversion never happens here.

// copyPlanar copies n samples between per-channel planes with a single
// offset-adjusted copy per channel.
func copyPlanar(dst, src [][]byte, dstStart, srcStart, n, bps int) {
	for ch := range src {
		copy(dst[ch][dstStart*bps:], src[ch][srcStart*bps:(srcStart+n)*bps])
	}
}

// interleave copies n samples from per-channel planes into the packed
// region dst, one element at a time.
func interleave(dst []byte, src [][]byte, dstStart, srcStart, n, bps int) {
	channels := len(src)
	for i := 0; i < n; i++ {
		for ch := 0; ch < channels; ch++ {
			d := ((dstStart+i)*channels + ch) * bps
			s := (srcStart + i) * bps
			copy(dst[d:d+bps], src[ch][s:s+bps])
		}
	}
}

// deinterleave copies n packed samples from src into per-channel planes,
// the inverse of interleave.
func deinterleave(dst [][]byte, src []byte, dstStart, srcStart, n, bps int) {
	channels := len(dst)
	for i := 0; i < n; i++ {
		for ch := 0; ch < channels; ch++ {
			s := ((srcStart+i)*channels + ch) * bps
			d := (dstStart + i) * bps
			copy(dst[ch][d:d+bps], src[s:s+bps])
		}
	}
}

// copyPacked copies n interleaved samples in one move. stride covers all
// channels of one sample.
func copyPacked(dst, src []byte, dstStart, srcStart, n, stride int) {
	copy(dst[dstStart*stride:], src[srcStart*stride:(srcStart+n)*stride])
}

// CopyTo copies samples into dst starting at dst's current sample count,
// beginning at srcStart in b. Both buffers must have the same channel
// count and numeric type; planar and packed layouts may be mixed freely.
// The count is clamped to min(dst.Available, b.Samples-srcStart) and
// returned; running out of room is a short copy, never an error.
// dst.Samples advances by exactly the returned count.
//
// When the channel counts differ and a Converter is attached, the copy is
// delegated to it; without one the call fails with ErrChannelMismatch and
// dst stays untouched.
func (b *Buffer) CopyTo(dst *Buffer, srcStart int) (int, error) {
	if dst == nil {
		return 0, fmt.Errorf("%w: nil destination", ErrInvalidArgument)
	}
	if srcStart < 0 || srcStart > b.Samples() {
		return 0, fmt.Errorf("%w: source start %d out of range [0, %d]", ErrInvalidArgument, srcStart, b.Samples())
	}

	if b.Channels() != dst.Channels() {
		if b.conv != nil {
			return b.conv.Convert(b, srcStart, dst, dst.Samples())
		}
		return 0, ErrChannelMismatch
	}

	if b.Format().AsPacked() != dst.Format().AsPacked() {
		return 0, ErrFormatMismatch
	}

	n := min(dst.Available(), b.Samples()-srcStart)
	if n <= 0 {
		return 0, nil
	}

	bps := b.Format().BytesPerSample()
	dstStart := dst.Samples()

	switch {
	case b.Format().IsPlanar() && dst.Format().IsPlanar():
		copyPlanar(dst.Planes(), b.Planes(), dstStart, srcStart, n, bps)
	case b.Format().IsPlanar():
		interleave(dst.cell.plane(0), b.Planes(), dstStart, srcStart, n, bps)
	case dst.Format().IsPlanar():
		deinterleave(dst.Planes(), b.cell.plane(0), dstStart, srcStart, n, bps)
	default:
		copyPacked(dst.cell.plane(0), b.cell.plane(0), dstStart, srcStart, n, b.stride())
	}

	dst.cell.setSamples(dstStart + n)

	return n, nil
}

// CopyFrom is the symmetric delegate to src.CopyTo(b, srcStart).
func (b *Buffer) CopyFrom(src *Buffer, srcStart int) (int, error) {
	if src == nil {
		return 0, fmt.Errorf("%w: nil source", ErrInvalidArgument)
	}

	return src.CopyTo(b, srcStart)
}

// AppendPacked copies interleaved raw bytes into the buffer, advancing
// the sample count. The input is always treated as packed regardless of
// the buffer's own layout; planar destinations de-interleave on the way
// in. len(src) must be a multiple of channels times bytes per sample.
// The copy is clamped to the available room and the number of samples
// actually appended is returned.
func (b *Buffer) AppendPacked(src []byte) (int, error) {
	stride := b.stride()
	if len(src)%stride != 0 {
		return 0, ErrSizeMismatch
	}

	n := min(b.Available(), len(src)/stride)
	if n <= 0 {
		return 0, nil
	}

	bps := b.Format().BytesPerSample()
	dstStart := b.Samples()

	if b.Format().IsPlanar() {
		deinterleave(b.Planes(), src, dstStart, 0, n, bps)
	} else {
		copyPacked(b.cell.plane(0), src, dstStart, 0, n, stride)
	}

	b.cell.setSamples(dstStart + n)

	return n, nil
}

// ExtractPacked copies samples out of the buffer into dst as interleaved
// raw bytes, starting at srcStart. Reads are non-destructive: the sample
// count does not change. Same length rule and clamping as AppendPacked;
// the number of samples written to dst is returned.
func (b *Buffer) ExtractPacked(dst []byte, srcStart int) (int, error) {
	stride := b.stride()
	if len(dst)%stride != 0 {
		return 0, ErrSizeMismatch
	}
	if srcStart < 0 || srcStart > b.Samples() {
		return 0, fmt.Errorf("%w: source start %d out of range [0, %d]", ErrInvalidArgument, srcStart, b.Samples())
	}

	n := min(b.Samples()-srcStart, len(dst)/stride)
	if n <= 0 {
		return 0, nil
	}

	bps := b.Format().BytesPerSample()

	if b.Format().IsPlanar() {
		interleave(dst, b.Planes(), 0, srcStart, n, bps)
	} else {
		copyPacked(dst, b.cell.plane(0), 0, srcStart, n, stride)
	}

	return n, nil
}
