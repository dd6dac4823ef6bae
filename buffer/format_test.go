package buffer

import (
	"errors"
	"testing"
)

var allFormats = []SampleFormat{
	U8, S16, S32, S64, F32, F64,
	U8P, S16P, S32P, S64P, F32P, F64P,
}

func TestSampleFormat_PlanarPackedExclusive(t *testing.T) {
	t.Parallel()

	for _, f := range allFormats {
		if f.IsPlanar() == f.IsPacked() {
			t.Errorf("%s: IsPlanar() = %v and IsPacked() = %v, want exactly one true", f, f.IsPlanar(), f.IsPacked())
		}
	}

	if None.IsPlanar() || None.IsPacked() {
		t.Error("None must be neither planar nor packed")
	}
}

func TestSampleFormat_BytesPerSample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format SampleFormat
		want   int
	}{
		{U8, 1}, {U8P, 1},
		{S16, 2}, {S16P, 2},
		{S32, 4}, {S32P, 4},
		{S64, 8}, {S64P, 8},
		{F32, 4}, {F32P, 4},
		{F64, 8}, {F64P, 8},
		{None, 0},
		{SampleFormat(99), 0},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.BytesPerSample(); got != tt.want {
				t.Errorf("BytesPerSample() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSampleFormat_PlanarPackedSameWidth(t *testing.T) {
	t.Parallel()

	// Planar and packed variants of the same numeric type must agree on
	// bytes per sample.
	for _, f := range allFormats {
		if f.AsPlanar().BytesPerSample() != f.AsPacked().BytesPerSample() {
			t.Errorf("%s: planar/packed variants disagree on sample width", f)
		}
	}
}

func TestSampleFormat_AsPlanarAsPacked(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format     SampleFormat
		wantPlanar SampleFormat
		wantPacked SampleFormat
	}{
		{U8, U8P, U8},
		{S16, S16P, S16},
		{F64, F64P, F64},
		{U8P, U8P, U8},
		{S32P, S32P, S32},
		{F32P, F32P, F32},
		{None, None, None},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.AsPlanar(); got != tt.wantPlanar {
				t.Errorf("AsPlanar() = %s, want %s", got, tt.wantPlanar)
			}
			if got := tt.format.AsPacked(); got != tt.wantPacked {
				t.Errorf("AsPacked() = %s, want %s", got, tt.wantPacked)
			}
		})
	}
}

func TestSampleFormat_Valid(t *testing.T) {
	t.Parallel()

	for _, f := range allFormats {
		if !f.Valid() {
			t.Errorf("%s: Valid() = false, want true", f)
		}
	}

	for _, f := range []SampleFormat{None, SampleFormat(-1), SampleFormat(100)} {
		if f.Valid() {
			t.Errorf("format %d: Valid() = true, want false", f)
		}
	}
}

func TestValidate_Match(t *testing.T) {
	t.Parallel()

	if err := Validate[uint8](U8); err != nil {
		t.Errorf("Validate[uint8](U8) = %v, want nil", err)
	}
	if err := Validate[int16](S16P); err != nil {
		t.Errorf("Validate[int16](S16P) = %v, want nil", err)
	}
	if err := Validate[int32](S32); err != nil {
		t.Errorf("Validate[int32](S32) = %v, want nil", err)
	}
	if err := Validate[int64](S64P); err != nil {
		t.Errorf("Validate[int64](S64P) = %v, want nil", err)
	}
	if err := Validate[float32](F32P); err != nil {
		t.Errorf("Validate[float32](F32P) = %v, want nil", err)
	}
	if err := Validate[float64](F64); err != nil {
		t.Errorf("Validate[float64](F64) = %v, want nil", err)
	}
}

func TestValidate_Mismatch(t *testing.T) {
	t.Parallel()

	// Requesting int16 elements against a float32 format must fail.
	if err := Validate[int16](F32); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Validate[int16](F32) = %v, want ErrTypeMismatch", err)
	}

	// Same width, different kind.
	if err := Validate[float32](S32); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Validate[float32](S32) = %v, want ErrTypeMismatch", err)
	}

	// None matches nothing.
	if err := Validate[uint8](None); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Validate[uint8](None) = %v, want ErrTypeMismatch", err)
	}
}

func TestSampleFormat_String(t *testing.T) {
	t.Parallel()

	if got := S16.String(); got != "s16" {
		t.Errorf("S16.String() = %q, want %q", got, "s16")
	}
	if got := F32P.String(); got != "f32p" {
		t.Errorf("F32P.String() = %q, want %q", got, "f32p")
	}
	if got := None.String(); got != "none" {
		t.Errorf("None.String() = %q, want %q", got, "none")
	}
	if got := SampleFormat(42).String(); got != "invalid" {
		t.Errorf("SampleFormat(42).String() = %q, want %q", got, "invalid")
	}
}
