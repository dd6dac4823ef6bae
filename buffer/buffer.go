// SPDX-License-Identifier: EPL-2.0

package buffer

import "fmt"

// Converter bridges two buffers whose geometry a plain byte copy cannot
// connect, remixing channels and optionally resampling. CopyTo delegates
// to it when the channel counts differ; the conversion algorithm itself
// lives outside this package.
type Converter interface {
	Convert(src *Buffer, srcStart int, dst *Buffer, dstStart int) (int, error)
}

// Buffer is a handle over a reference-counted storage cell holding
// multi-channel samples in planar or packed layout. Handles created by
// Clone share the cell; callers serialize concurrent mutation themselves.
type Buffer struct {
	cell   *cell
	conv   Converter
	closed bool
}

// Allocate creates a zero-filled buffer able to hold capacity samples per
// channel. The sample count starts at zero; capacity never changes for
// the life of the buffer.
func Allocate(info BufferInfo, capacity int) (*Buffer, error) {
	c, err := newCell(info, capacity)
	if err != nil {
		return nil, err
	}

	return &Buffer{cell: c}, nil
}

// FromPacked allocates a buffer with exactly enough capacity for src and
// copies it in. src is interleaved raw bytes; its length must be a
// multiple of channels times bytes per sample.
func FromPacked(info BufferInfo, src []byte) (*Buffer, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}

	stride := int(info.Channels) * info.Format.BytesPerSample()
	if len(src)%stride != 0 {
		return nil, ErrSizeMismatch
	}

	b, err := Allocate(info, len(src)/stride)
	if err != nil {
		return nil, err
	}

	if _, err := b.AppendPacked(src); err != nil {
		b.Close()
		return nil, err
	}

	return b, nil
}

// SetConverter attaches the collaborator CopyTo falls back to when the
// destination has a different channel count. A nil converter restores
// the default behavior of failing with ErrChannelMismatch.
func (b *Buffer) SetConverter(conv Converter) {
	b.conv = conv
}

// Format returns the sample format recorded in the storage cell.
func (b *Buffer) Format() SampleFormat {
	return b.cell.format()
}

// Channels returns the channel count.
func (b *Buffer) Channels() int {
	return b.cell.channels()
}

// Alignment returns the per-plane stride alignment in bytes.
func (b *Buffer) Alignment() int {
	return b.cell.alignment()
}

// Samples returns the number of valid samples per channel currently in
// the buffer.
func (b *Buffer) Samples() int {
	return b.cell.samples()
}

// Capacity returns the maximum number of samples per channel the
// allocation can hold. Fixed at allocation time.
func (b *Buffer) Capacity() int {
	return b.cell.capacity()
}

// Available returns how many more samples per channel fit.
func (b *Buffer) Available() int {
	return b.cell.capacity() - b.cell.samples()
}

// stride is the width of one interleaved sample across all channels.
func (b *Buffer) stride() int {
	return b.cell.channels() * b.cell.format().BytesPerSample()
}

// Plane returns the raw line of channel ch: one region per channel for
// planar buffers, the single interleaved region (ch must be 0) for
// packed ones. The slice spans the full capacity, not just the valid
// samples.
func (b *Buffer) Plane(ch int) ([]byte, error) {
	if ch < 0 || ch >= b.cell.slots {
		return nil, fmt.Errorf("%w: plane %d of %d", ErrInvalidArgument, ch, b.cell.slots)
	}

	return b.cell.plane(ch), nil
}

// LineSize returns the stride of plane ch in bytes.
func (b *Buffer) LineSize(ch int) (int, error) {
	if ch < 0 || ch >= b.cell.slots {
		return 0, fmt.Errorf("%w: plane %d of %d", ErrInvalidArgument, ch, b.cell.slots)
	}

	return b.cell.lineSize(ch), nil
}

// Planes returns every plane line, in channel order. Packed buffers have
// a single entry.
func (b *Buffer) Planes() [][]byte {
	planes := make([][]byte, b.cell.slots)
	for i := range planes {
		planes[i] = b.cell.plane(i)
	}

	return planes
}

// LineSizes returns the stride of every plane, in channel order.
func (b *Buffer) LineSizes() []int {
	sizes := make([]int, b.cell.slots)
	for i := range sizes {
		sizes[i] = b.cell.lineSize(i)
	}

	return sizes
}

// PackedBytes returns the valid interleaved bytes of a packed buffer.
// The slice aliases the storage cell; treat it as read-only. Planar
// buffers have no packed view and fail with ErrNotSupported.
func (b *Buffer) PackedBytes() ([]byte, error) {
	if b.Format().IsPlanar() {
		return nil, fmt.Errorf("%w: packed view of a planar buffer", ErrNotSupported)
	}

	return b.cell.plane(0)[:b.Samples()*b.stride()], nil
}

// WritablePackedBytes is PackedBytes for mutation. It additionally
// requires the storage cell to be exclusive, so writes cannot surprise
// another handle sharing the cell.
func (b *Buffer) WritablePackedBytes() ([]byte, error) {
	if b.Format().IsPlanar() {
		return nil, fmt.Errorf("%w: packed view of a planar buffer", ErrNotSupported)
	}
	if !b.cell.exclusive() {
		return nil, fmt.Errorf("%w: storage cell is shared, call MakeWriteable first", ErrNotSupported)
	}

	return b.cell.plane(0)[:b.Samples()*b.stride()], nil
}

// Clone returns a second handle over the same storage cell. Mutations
// through either handle are visible to both; closing one does not
// invalidate the other while references remain.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{cell: b.cell.clone(), conv: b.conv}
}

// Copy returns a fully independent duplicate of the buffer.
func (b *Buffer) Copy() *Buffer {
	return &Buffer{cell: b.cell.deepCopy(), conv: b.conv}
}

// MakeWriteable ensures this handle is the only reference to its storage
// cell, copying the cell when it is shared. Fails with ErrOutOfMemory
// when exclusivity cannot be achieved.
func (b *Buffer) MakeWriteable() error {
	if b.cell.exclusive() {
		return nil
	}

	fresh := b.cell.deepCopy()
	b.cell.release()
	b.cell = fresh

	return nil
}

// TryMakeWriteable is MakeWriteable with a boolean result instead of an
// error.
func (b *Buffer) TryMakeWriteable() bool {
	return b.MakeWriteable() == nil
}

// Clear resets the sample count to zero without touching the allocated
// bytes. Logical truncation, not zeroing.
func (b *Buffer) Clear() {
	b.cell.setSamples(0)
}

// Close releases this handle's reference to the storage cell. Closing a
// handle twice is a no-op; the cell is freed when the last handle closes.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.cell.release()

	return nil
}
