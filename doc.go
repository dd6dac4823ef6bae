// SPDX-License-Identifier: EPL-2.0

// Package pcmbuf provides reference-counted, multi-channel PCM sample
// buffers for Go applications.
//
// This package is the high-level entry point. The heavy lifting lives
// in the subpackages: buffer holds the storage model and copy
// machinery, bridge converts between incompatible buffers, and interop
// exchanges samples with the go-audio ecosystem.
//
// # Quick Start
//
// Allocate a buffer, fill it with typed samples, and copy it somewhere:
//
//	info := buffer.BufferInfo{Format: buffer.S16, Channels: 2, Alignment: 32}
//	b, _ := buffer.Allocate(info, 4096)
//	defer b.Close()
//
//	buffer.AppendSamples(b, pcm16)
//
//	dst, _ := buffer.Allocate(info, 4096)
//	defer dst.Close()
//	n, _ := pcmbuf.Transfer(dst, b, 0, nil)
//
// # Layouts
//
// Buffers store samples packed (channels interleaved in one region) or
// planar (one region per channel). Copies between the two layouts
// interleave or deinterleave on the fly; everything else about the two
// buffers must agree.
//
// # Sharing
//
// Clone shares storage by bumping a reference count, Copy duplicates
// it, and MakeWriteable turns a shared handle into an exclusive one by
// copying on demand:
//
//	view := b.Clone()      // same samples, two handles
//	view.MakeWriteable()   // now safe to mutate independently
//	view.Close()
//
// # Conversion
//
// When channel counts, sample formats, or sample rates differ, attach a
// bridge and let the copy path delegate:
//
//	stereo.SetConverter(bridge.New(bridge.WithRates(44100, 8000)))
//	n, err := stereo.CopyTo(mono, 0)
//
// The same machinery backs the one-call helpers here: Transfer moves
// samples between any two buffers, and ResampleToMono16 collapses a
// buffer to 8kHz-style mono int16 in a single call.
//
// # Interop
//
// The interop subpackage converts to and from go-audio's IntBuffer and
// Float32Buffer, so decoders such as go-audio/wav and go-audio/aiff can
// feed buffers directly.
//
// See the individual subpackages for more detailed documentation.
package pcmbuf
