// SPDX-License-Identifier: EPL-2.0

// Package bridge converts audio between buffers that a plain copy
// cannot connect.
//
// The buffer package moves bytes between buffers with identical channel
// counts and numeric types. Everything else - remixing channels,
// changing numeric type, changing sample rate - goes through a Bridge,
// which implements buffer.Converter:
//
//	br := bridge.New(bridge.WithRates(44100, 8000))
//	stereo.SetConverter(br)
//
//	// Channel counts differ, so CopyTo delegates to the bridge.
//	n, err := stereo.CopyTo(mono, 0)
//
// The package also exposes the normalized float32 view the bridge is
// built on: Frames reads any buffer as interleaved [-1, 1] floats, and
// Append writes such frames back in the destination's own format.
package bridge
