// SPDX-License-Identifier: EPL-2.0

package interop

import (
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/pcmbuf/bridge"
	"github.com/ik5/pcmbuf/buffer"
)

// bitDepthMax returns the normalization divisor for go-audio int
// samples of the given source bit depth.
func bitDepthMax(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0 // go-audio defaults to 16-bit
	}
}

// FromIntBuffer copies a go-audio IntBuffer into a freshly allocated
// Buffer of the given sample format. The int samples are normalized by
// the IntBuffer's SourceBitDepth, then quantized to format.
func FromIntBuffer(src *goaudio.IntBuffer, format buffer.SampleFormat) (*buffer.Buffer, error) {
	if src == nil || src.Format == nil {
		return nil, fmt.Errorf("%w: nil IntBuffer", buffer.ErrInvalidArgument)
	}

	channels := src.Format.NumChannels
	if channels <= 0 {
		return nil, fmt.Errorf("%w: IntBuffer reports %d channels", buffer.ErrInvalidArgument, channels)
	}
	if len(src.Data)%channels != 0 {
		return nil, buffer.ErrSizeMismatch
	}

	maxVal := bitDepthMax(src.SourceBitDepth)
	frames := make([]float32, len(src.Data))
	for i, v := range src.Data {
		frames[i] = float32(v) / maxVal
	}

	return fromFrames(frames, format, int32(channels))
}

// FromFloat32Buffer copies a go-audio Float32Buffer into a freshly
// allocated Buffer of the given sample format.
func FromFloat32Buffer(src *goaudio.Float32Buffer, format buffer.SampleFormat) (*buffer.Buffer, error) {
	if src == nil || src.Format == nil {
		return nil, fmt.Errorf("%w: nil Float32Buffer", buffer.ErrInvalidArgument)
	}

	channels := src.Format.NumChannels
	if channels <= 0 {
		return nil, fmt.Errorf("%w: Float32Buffer reports %d channels", buffer.ErrInvalidArgument, channels)
	}
	if len(src.Data)%channels != 0 {
		return nil, buffer.ErrSizeMismatch
	}

	return fromFrames(src.Data, format, int32(channels))
}

func fromFrames(frames []float32, format buffer.SampleFormat, channels int32) (*buffer.Buffer, error) {
	info := buffer.BufferInfo{Format: format, Channels: channels, Alignment: 1}

	b, err := buffer.Allocate(info, len(frames)/int(channels))
	if err != nil {
		return nil, err
	}

	if _, err := bridge.Append(b, frames); err != nil {
		b.Close()
		return nil, err
	}

	return b, nil
}

// ToIntBuffer converts the valid samples of b into a go-audio IntBuffer
// at the given sample rate. Formats wider than 32 bits are scaled down
// to 32, the widest depth go-audio consumers expect.
func ToIntBuffer(b *buffer.Buffer, sampleRate int) (*goaudio.IntBuffer, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil buffer", buffer.ErrInvalidArgument)
	}

	frames, err := bridge.Frames(b, 0, b.Samples())
	if err != nil {
		return nil, err
	}

	bitDepth := min(b.Format().BytesPerSample()*8, 32)
	maxVal := bitDepthMax(bitDepth)

	data := make([]int, len(frames))
	for i, v := range frames {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		data[i] = int(v * (maxVal - 1))
	}

	return &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: b.Channels(), SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}, nil
}

// ToFloat32Buffer converts the valid samples of b into a go-audio
// Float32Buffer at the given sample rate.
func ToFloat32Buffer(b *buffer.Buffer, sampleRate int) (*goaudio.Float32Buffer, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil buffer", buffer.ErrInvalidArgument)
	}

	frames, err := bridge.Frames(b, 0, b.Samples())
	if err != nil {
		return nil, err
	}

	return &goaudio.Float32Buffer{
		Data:           frames,
		Format:         &goaudio.Format{NumChannels: b.Channels(), SampleRate: sampleRate},
		SourceBitDepth: b.Format().BytesPerSample() * 8,
	}, nil
}
