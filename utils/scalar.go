// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Scalar conversions between native sample types and normalized float32
// in [-1, 1]. Integer maxima use the positive limit on the way out to
// avoid overflow, and the negative limit (one larger in magnitude) on
// the way in, matching common PCM conventions.

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

func Float32ToUint8(x float32) uint8 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Unsigned 8-bit PCM centers silence at 128.
	return uint8(x*127.0 + 128.0)
}

func Uint8ToFloat32(v uint8) float32 {
	return (float32(v) - 128.0) / 128.0
}

func Float32ToInt32(x float32) int32 {
	if x >= 1 {
		return math.MaxInt32
	}
	if x < -1 {
		x = -1
	}

	return int32(float64(x) * 2147483647.0)
}

func Int32ToFloat32(v int32) float32 {
	return float32(float64(v) / 2147483648.0)
}

func Float32ToInt64(x float32) int64 {
	if x >= 1 {
		return math.MaxInt64
	}
	if x < -1 {
		x = -1
	}

	return int64(float64(x) * float64(math.MaxInt64))
}

func Int64ToFloat32(v int64) float32 {
	return float32(float64(v) / 9223372036854775808.0)
}
