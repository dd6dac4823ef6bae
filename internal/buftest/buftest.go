// SPDX-License-Identifier: EPL-2.0

// Package buftest generates deterministic sample data for tests.
package buftest

import (
	"math"

	"github.com/ik5/pcmbuf/bridge"
	"github.com/ik5/pcmbuf/buffer"
)

// Frames builds interleaved float32 frames from a waveform function
// that maps (sample index, channel) to a normalized value.
func Frames(channels, samples int, waveform func(sample, channel int) float32) []float32 {
	out := make([]float32, samples*channels)
	for s := range samples {
		for c := range channels {
			out[s*channels+c] = waveform(s, c)
		}
	}

	return out
}

// SineFrames generates a sine wave at the given frequency, identical on
// every channel.
func SineFrames(sampleRate, channels, samples int, frequency float64) []float32 {
	return Frames(channels, samples, func(sample, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// ConstantFrames generates frames holding a single value.
func ConstantFrames(channels, samples int, value float32) []float32 {
	return Frames(channels, samples, func(sample, channel int) float32 {
		return value
	})
}

// RampFrames generates the value sample*channels+channel scaled into
// [0, 1), distinct per slot so copy tests can verify placement.
func RampFrames(channels, samples int) []float32 {
	total := float32(samples * channels)
	return Frames(channels, samples, func(sample, channel int) float32 {
		return float32(sample*channels+channel) / total
	})
}

// Int16Ramp generates interleaved int16 samples where slot i holds the
// value i, distinct per slot so placement bugs show up.
func Int16Ramp(channels, samples int) []int16 {
	out := make([]int16, samples*channels)
	for i := range out {
		out[i] = int16(i)
	}

	return out
}

// Fill appends frames produced by a waveform function to b, converting
// to b's own sample format. Returns the number of samples appended.
func Fill(b *buffer.Buffer, samples int, waveform func(sample, channel int) float32) (int, error) {
	return bridge.Append(b, Frames(b.Channels(), samples, waveform))
}
