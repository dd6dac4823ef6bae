// SPDX-License-Identifier: EPL-2.0

// Package buffer provides reference-counted, self-describing audio
// sample buffers.
//
// A Buffer stores multi-channel samples in either planar layout (one
// contiguous region per channel) or packed layout (channels interleaved
// per sample), together with the routines that copy samples between
// buffers of arbitrary layout combinations.
//
// # Storage model
//
// Each buffer owns one contiguous allocation holding a small header
// (format, channels, alignment, sample count, capacity), a per-plane
// line-size and offset table, and the raw sample region. The allocation
// is reference counted: Clone shares it, Copy duplicates it, and
// MakeWriteable turns a shared cell into an exclusive one before
// mutation.
//
//	info := buffer.BufferInfo{Format: buffer.S16, Channels: 2, Alignment: 1}
//	buf, err := buffer.Allocate(info, 1024)
//	if err != nil {
//	    return err
//	}
//	defer buf.Close()
//
// # Copying
//
// CopyTo and CopyFrom connect two buffers with the same channel count
// and numeric type, interleaving or de-interleaving as the layouts
// require. AppendPacked and ExtractPacked move interleaved raw bytes in
// and out; AppendSamples and ExtractSamples are the typed variants that
// check the element type against the sample format first.
//
//	n, err := src.CopyTo(dst, 0)
//
// Capacity exhaustion is never an error: copies clamp to the available
// room and report the true number of samples moved, so streaming callers
// can detect a short copy and react.
//
// # Concurrency
//
// The reference count is atomic; nothing else is synchronized. Sharing
// one storage cell across goroutines requires external serialization.
package buffer
