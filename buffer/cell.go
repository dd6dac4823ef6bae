// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"
)

// cursor provides bounds-checked little-endian access to header fields
// inside a raw allocation. Slicing panics on out-of-range offsets, so a
// corrupted offset can never silently read past the block.
type cursor []byte

func (c cursor) readInt32At(off int) int32 {
	return int32(binary.LittleEndian.Uint32(c[off : off+4]))
}

func (c cursor) writeInt32At(off int, v int32) {
	binary.LittleEndian.PutUint32(c[off:off+4], uint32(v))
}

func (c cursor) readInt64At(off int) int64 {
	return int64(binary.LittleEndian.Uint64(c[off : off+8]))
}

func (c cursor) writeInt64At(off int, v int64) {
	binary.LittleEndian.PutUint64(c[off:off+8], uint64(v))
}

// cell is a reference-counted storage block holding the header fields,
// the line-size and plane-offset tables and the raw sample region in one
// contiguous allocation. Multiple Buffer handles may share one cell; the
// refcount is atomic, the header and sample region are not synchronized.
type cell struct {
	data       cursor
	refs       *atomic.Int32
	dataOffset int
	slots      int
}

// newCell allocates a zero-filled cell for the given geometry, writes the
// header fields and initializes the plane tables. Validation happens
// before the allocation, so the error paths never leak a live block.
func newCell(info BufferInfo, capacity int) (*cell, error) {
	size, err := AllocSize(info, capacity)
	if err != nil {
		return nil, err
	}

	dataOffset, err := DataOffset(info.Format, info.Channels)
	if err != nil {
		return nil, err
	}

	c := &cell{
		data:       make([]byte, size),
		refs:       &atomic.Int32{},
		dataOffset: dataOffset,
		slots:      planeSlots(info.Format, info.Channels),
	}
	c.refs.Store(1)

	c.data.writeInt32At(formatOffset, int32(info.Format))
	c.data.writeInt32At(channelsOffset, info.Channels)
	c.data.writeInt32At(alignmentOffset, info.Alignment)
	c.data.writeInt32At(sampleCountOffset, 0)
	c.data.writeInt32At(capacityOffset, int32(capacity))

	if err := c.fillPlaneTables(info, capacity); err != nil {
		c.release()
		return nil, err
	}

	return c, nil
}

// fillPlaneTables writes per-plane strides and offsets into the header
// tables. The sanity check mirrors the fill-arrays failure path: a table
// that does not cover the allocation exactly is a geometry error.
func (c *cell) fillPlaneTables(info BufferInfo, capacity int) error {
	bps := int64(info.Format.BytesPerSample())

	var lineSize int64
	if info.Format.IsPlanar() {
		lineSize = alignUp(int64(capacity)*bps, int64(info.Alignment))
	} else {
		lineSize = alignUp(int64(capacity)*int64(info.Channels)*bps, int64(info.Alignment))
	}

	if int64(c.dataOffset)+lineSize*int64(c.slots) != int64(len(c.data)) {
		return fmt.Errorf("%w: plane table does not cover allocation", ErrInvalidArgument)
	}

	for i := 0; i < c.slots; i++ {
		c.data.writeInt32At(lineSizesOffset+i*lineSizeSlot, int32(lineSize))
		off := int64(c.dataOffset) + int64(i)*lineSize
		c.data.writeInt64At(c.planeTableOffset()+i*planeOffsetSlot, off)
	}

	return nil
}

func (c *cell) planeTableOffset() int {
	return lineSizesOffset + c.slots*lineSizeSlot
}

// clone shares the allocation: both handles observe the same header and
// sample data. Callers coordinate mutation themselves.
func (c *cell) clone() *cell {
	c.refs.Add(1)
	return c
}

// deepCopy duplicates the entire allocation, header included, yielding an
// independent cell with a fresh refcount of one.
func (c *cell) deepCopy() *cell {
	fresh := &cell{
		data:       make([]byte, len(c.data)),
		refs:       &atomic.Int32{},
		dataOffset: c.dataOffset,
		slots:      c.slots,
	}
	fresh.refs.Store(1)
	copy(fresh.data, c.data)

	return fresh
}

// exclusive reports whether this handle is the only live reference.
func (c *cell) exclusive() bool {
	return c.refs.Load() == 1
}

// release drops one reference; the allocation is dropped when the last
// reference goes away. Callers guard against double release per handle.
func (c *cell) release() {
	if c.refs.Add(-1) == 0 {
		c.data = nil
	}
}

// Header accessors. All state lives in the cell so that every handle
// sharing the allocation observes the same values.

func (c *cell) format() SampleFormat {
	return SampleFormat(c.data.readInt32At(formatOffset))
}

func (c *cell) channels() int {
	return int(c.data.readInt32At(channelsOffset))
}

func (c *cell) alignment() int {
	return int(c.data.readInt32At(alignmentOffset))
}

func (c *cell) samples() int {
	return int(c.data.readInt32At(sampleCountOffset))
}

func (c *cell) setSamples(n int) {
	c.data.writeInt32At(sampleCountOffset, int32(n))
}

func (c *cell) capacity() int {
	return int(c.data.readInt32At(capacityOffset))
}

func (c *cell) lineSize(i int) int {
	return int(c.data.readInt32At(lineSizesOffset + i*lineSizeSlot))
}

func (c *cell) planeOffset(i int) int64 {
	return c.data.readInt64At(c.planeTableOffset() + i*planeOffsetSlot)
}

// plane returns the full line of plane i, capacity worth of bytes.
func (c *cell) plane(i int) []byte {
	off := c.planeOffset(i)
	return c.data[off : off+int64(c.lineSize(i))]
}
