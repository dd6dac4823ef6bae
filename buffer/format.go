// SPDX-License-Identifier: EPL-2.0

package buffer

import "fmt"

// SampleFormat identifies the numeric type of a sample together with the
// memory layout of the channels: packed formats interleave all channels,
// planar formats keep one contiguous region per channel.
type SampleFormat int32

const (
	None SampleFormat = iota

	U8  // unsigned 8-bit, packed
	S16 // signed 16-bit, packed
	S32 // signed 32-bit, packed
	S64 // signed 64-bit, packed
	F32 // 32-bit float, packed
	F64 // 64-bit float, packed

	U8P  // unsigned 8-bit, planar
	S16P // signed 16-bit, planar
	S32P // signed 32-bit, planar
	S64P // signed 64-bit, planar
	F32P // 32-bit float, planar
	F64P // 64-bit float, planar
)

// planarShift is the constant distance between a packed format and its
// planar counterpart in the enumeration.
const planarShift = U8P - U8

// Valid reports whether f is one of the defined formats (not None).
func (f SampleFormat) Valid() bool {
	return f > None && f <= F64P
}

// IsPlanar reports whether each channel occupies its own contiguous region.
func (f SampleFormat) IsPlanar() bool {
	return f >= U8P && f <= F64P
}

// IsPacked reports whether all channels are interleaved in one region.
// IsPlanar and IsPacked are mutually exclusive and total for valid formats.
func (f SampleFormat) IsPacked() bool {
	return f >= U8 && f <= F64
}

// BytesPerSample returns the width of a single sample in bytes,
// or 0 for None or an undefined value.
func (f SampleFormat) BytesPerSample() int {
	switch f {
	case U8, U8P:
		return 1
	case S16, S16P:
		return 2
	case S32, S32P, F32, F32P:
		return 4
	case S64, S64P, F64, F64P:
		return 8
	default:
		return 0
	}
}

// AsPacked returns the packed variant of f, preserving the numeric type.
// Packed formats and None are returned unchanged.
func (f SampleFormat) AsPacked() SampleFormat {
	if f.IsPlanar() {
		return f - planarShift
	}
	return f
}

// AsPlanar returns the planar variant of f, preserving the numeric type.
// Planar formats and None are returned unchanged.
func (f SampleFormat) AsPlanar() SampleFormat {
	if f.IsPacked() {
		return f + planarShift
	}
	return f
}

func (f SampleFormat) String() string {
	switch f {
	case None:
		return "none"
	case U8:
		return "u8"
	case S16:
		return "s16"
	case S32:
		return "s32"
	case S64:
		return "s64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case U8P:
		return "u8p"
	case S16P:
		return "s16p"
	case S32P:
		return "s32p"
	case S64P:
		return "s64p"
	case F32P:
		return "f32p"
	case F64P:
		return "f64p"
	default:
		return "invalid"
	}
}

// Sample is the closed set of element types a SampleFormat can describe.
type Sample interface {
	uint8 | int16 | int32 | int64 | float32 | float64
}

// Validate checks that the element type T matches the numeric type of f,
// regardless of planar or packed layout. It returns ErrTypeMismatch when
// the width or kind differs, e.g. int16 elements against a float32 format.
func Validate[T Sample](f SampleFormat) error {
	var zero T

	var want SampleFormat
	switch any(zero).(type) {
	case uint8:
		want = U8
	case int16:
		want = S16
	case int32:
		want = S32
	case int64:
		want = S64
	case float32:
		want = F32
	case float64:
		want = F64
	}

	if f.AsPacked() != want {
		return fmt.Errorf("%w: %T elements against %s", ErrTypeMismatch, zero, f)
	}

	return nil
}
