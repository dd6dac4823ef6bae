package interop_test

import (
	"encoding/binary"
	"io"
	"log"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/aiff"
	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/pcmbuf/buffer"
	"github.com/ik5/pcmbuf/interop"
)

// Feed a decoded WAV file into a Buffer.
func ExampleFromIntBuffer() {
	f, err := os.Open("testdata/tone.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		log.Fatal(err)
	}

	buf, err := interop.FromIntBuffer(pcm, buffer.S16)
	if err != nil {
		log.Fatal(err)
	}
	defer buf.Close()
}

// AIFF decoding goes through the same IntBuffer path as WAV.
func ExampleFromIntBuffer_aiff() {
	f, err := os.Open("testdata/tone.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	dec := aiff.NewDecoder(f)

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		log.Fatal(err)
	}

	buf, err := interop.FromIntBuffer(pcm, buffer.S16P)
	if err != nil {
		log.Fatal(err)
	}
	defer buf.Close()
}

// go-mp3 emits 16-bit little-endian stereo PCM bytes. Reassemble them
// into an IntBuffer before handing off.
func ExampleFromIntBuffer_mp3() {
	f, err := os.Open("testdata/tone.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	dec, err := gomp3.NewDecoder(f)
	if err != nil {
		log.Fatal(err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		log.Fatal(err)
	}

	data := make([]int, len(raw)/2)
	for i := range data {
		data[i] = int(int16(binary.LittleEndian.Uint16(raw[2*i:])))
	}

	pcm := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: dec.SampleRate()},
		SourceBitDepth: 16,
	}

	buf, err := interop.FromIntBuffer(pcm, buffer.S16)
	if err != nil {
		log.Fatal(err)
	}
	defer buf.Close()
}

// Ogg Vorbis decodes straight to normalized float32, matching
// Float32Buffer.
func ExampleFromFloat32Buffer() {
	f, err := os.Open("testdata/tone.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	dec, err := oggvorbis.NewReader(f)
	if err != nil {
		log.Fatal(err)
	}

	var frames []float32
	chunk := make([]float32, 4096*dec.Channels())
	for {
		n, err := dec.Read(chunk)
		if n > 0 {
			frames = append(frames, chunk[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	pcm := &goaudio.Float32Buffer{
		Data:   frames,
		Format: &goaudio.Format{NumChannels: dec.Channels(), SampleRate: dec.SampleRate()},
	}

	buf, err := interop.FromFloat32Buffer(pcm, buffer.F32)
	if err != nil {
		log.Fatal(err)
	}
	defer buf.Close()
}
