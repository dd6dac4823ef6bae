// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"fmt"
	"math"
)

// BufferInfo fully determines the memory layout of a buffer together with
// its capacity. Two equal BufferInfo values always produce identical layouts.
type BufferInfo struct {
	Format    SampleFormat
	Channels  int32
	Alignment int32
}

// Validate checks the geometry fields without computing anything.
func (info BufferInfo) Validate() error {
	if !info.Format.Valid() {
		return fmt.Errorf("%w: sample format %s", ErrInvalidArgument, info.Format)
	}
	if info.Channels <= 0 {
		return fmt.Errorf("%w: channels must be positive, got %d", ErrInvalidArgument, info.Channels)
	}
	if info.Alignment <= 0 {
		return fmt.Errorf("%w: alignment must be positive, got %d", ErrInvalidArgument, info.Alignment)
	}

	return nil
}

// Header field offsets inside a storage cell allocation. Each field is a
// little-endian int32; the line-size and plane-offset tables follow,
// with one slot per channel for planar formats and a single slot for
// packed formats. Raw sample data starts right after the tables.
const (
	formatOffset      = 0
	channelsOffset    = 4
	alignmentOffset   = 8
	sampleCountOffset = 12
	capacityOffset    = 16
	lineSizesOffset   = 20

	lineSizeSlot    = 4 // int32 per plane
	planeOffsetSlot = 8 // int64 per plane
)

// planeSlots returns how many line-size/plane-offset slots the format
// reserves: one per channel when planar, exactly one when packed.
func planeSlots(format SampleFormat, channels int32) int {
	if format.IsPlanar() {
		return int(channels)
	}
	return 1
}

// DataOffset returns the byte offset, from the start of the allocation,
// at which raw sample data begins. The offset grows with the channel
// count for planar formats and is constant for packed ones.
func DataOffset(format SampleFormat, channels int32) (int, error) {
	if !format.Valid() {
		return 0, fmt.Errorf("%w: sample format %s", ErrInvalidArgument, format)
	}
	if channels <= 0 {
		return 0, fmt.Errorf("%w: channels must be positive, got %d", ErrInvalidArgument, channels)
	}

	slots := planeSlots(format, channels)

	return lineSizesOffset + slots*(lineSizeSlot+planeOffsetSlot), nil
}

// alignUp rounds n up to the next multiple of alignment.
func alignUp(n, alignment int64) int64 {
	return (n + alignment - 1) / alignment * alignment
}

// SampleRegionSize returns the number of bytes the raw sample region
// occupies for the given geometry. Planar formats round each channel's
// stride up to the alignment; packed formats round the single interleaved
// stride. Returns ErrSizeOverflow when the result does not fit in an
// int32.
func SampleRegionSize(format SampleFormat, channels int32, capacity int, alignment int32) (int, error) {
	info := BufferInfo{Format: format, Channels: channels, Alignment: alignment}
	if err := info.Validate(); err != nil {
		return 0, err
	}
	if capacity < 0 {
		return 0, fmt.Errorf("%w: capacity must not be negative, got %d", ErrInvalidArgument, capacity)
	}

	// Reject oversized capacities before any multiplication, so the
	// int64 arithmetic below can never wrap past the overflow check.
	if int64(capacity) > math.MaxInt32 {
		return 0, ErrSizeOverflow
	}

	bps := int64(format.BytesPerSample())

	perChannel := int64(capacity) * bps
	if perChannel > math.MaxInt32 {
		return 0, ErrSizeOverflow
	}

	var size int64
	if format.IsPlanar() {
		size = alignUp(perChannel, int64(alignment)) * int64(channels)
	} else {
		size = alignUp(perChannel*int64(channels), int64(alignment))
	}

	if size > math.MaxInt32 {
		return 0, ErrSizeOverflow
	}

	return int(size), nil
}

// AllocSize returns the total allocation size for a buffer: the header
// and plane tables followed by the aligned sample region.
func AllocSize(info BufferInfo, capacity int) (int, error) {
	dataOffset, err := DataOffset(info.Format, info.Channels)
	if err != nil {
		return 0, err
	}

	region, err := SampleRegionSize(info.Format, info.Channels, capacity, info.Alignment)
	if err != nil {
		return 0, err
	}

	total := int64(dataOffset) + int64(region)
	if total > math.MaxInt32 {
		return 0, ErrSizeOverflow
	}

	return int(total), nil
}
