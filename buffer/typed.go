// SPDX-License-Identifier: EPL-2.0

package buffer

import "unsafe"

// Typed entry points over the raw byte routines. Methods cannot carry
// type parameters, so these are package functions taking the buffer as
// their first argument. The element type is checked against the buffer's
// sample format before any bytes move, then the typed slice is aliased
// as raw bytes in place.

// AppendSamples copies interleaved typed samples into b, advancing the
// sample count. Fails with ErrTypeMismatch when T does not match the
// buffer's numeric type. Returns the number of samples per channel
// actually appended, clamped to the available room.
func AppendSamples[T Sample](b *Buffer, src []T) (int, error) {
	if err := Validate[T](b.Format()); err != nil {
		return 0, err
	}

	return b.AppendPacked(asBytes(src))
}

// ExtractSamples copies interleaved typed samples out of b into dst,
// starting at srcStart, without consuming them. Same type check and
// clamping as AppendSamples.
func ExtractSamples[T Sample](b *Buffer, dst []T, srcStart int) (int, error) {
	if err := Validate[T](b.Format()); err != nil {
		return 0, err
	}

	return b.ExtractPacked(asBytes(dst), srcStart)
}

// asBytes aliases a typed slice as its underlying bytes without copying.
// Sample permits only fixed-width numeric types, so the element size is
// exact and the aliased slice covers the data precisely.
func asBytes[T Sample](s []T) []byte {
	if len(s) == 0 {
		return nil
	}

	var zero T

	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}
