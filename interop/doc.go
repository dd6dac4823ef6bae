// SPDX-License-Identifier: EPL-2.0

// Package interop exchanges samples with the go-audio ecosystem.
//
// Decoders such as go-audio/wav and go-audio/aiff produce
// audio.IntBuffer values, and many processing packages consume
// audio.Float32Buffer. The functions here copy those into and out of
// buffer.Buffer, normalizing integer samples by their source bit depth
// along the way:
//
//	dec := wav.NewDecoder(r)
//	pcm, err := dec.FullPCMBuffer()
//	if err != nil {
//		return err
//	}
//	buf, err := interop.FromIntBuffer(pcm, buffer.S16)
//
// Conversions always copy. The returned buffers own their storage and
// never alias the go-audio slices.
package interop
