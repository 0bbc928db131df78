// Package audio decodes and encodes WAV containers into flat integer
// sample buffers for the processor.
package audio

import (
	"errors"
	"fmt"
	"os"
	"time"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ErrUnsupportedFormat marks containers the pipeline cannot process:
// floating-point samples, integer bit depths outside 16/24/32, or a
// channel count of zero. Files failing this way are skipped, not fatal.
var ErrUnsupportedFormat = errors.New("unsupported sample format")

// WAV fmt-chunk audio format tags.
const (
	wavFormatPCM       = 1
	wavFormatIEEEFloat = 3
)

// Buffer is one fully decoded (or about-to-be-encoded) audio file.
// Samples are interleaved: flat index i belongs to channel i mod Channels.
type Buffer struct {
	Samples    []int
	Channels   int
	SampleRate int
	BitDepth   int
}

// SamplesPerChannel returns the per-channel length of the interleaved data.
func (b *Buffer) SamplesPerChannel() int {
	if b.Channels == 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Duration returns the buffer's play time.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate == 0 {
		return 0
	}
	return time.Duration(float64(b.SamplesPerChannel()) / float64(b.SampleRate) * float64(time.Second))
}

// Decode reads the whole WAV file at path into memory. Only integer PCM at
// 16, 24 or 32 bits per sample is accepted; anything else is reported as
// ErrUnsupportedFormat so the caller can skip the file and continue.
func Decode(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("decode %s: not a valid WAV file", path)
	}

	switch dec.WavAudioFormat {
	case wavFormatPCM:
	case wavFormatIEEEFloat:
		return nil, fmt.Errorf("%s: %d-bit floating point samples: %w", path, dec.BitDepth, ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("%s: audio format tag %d: %w", path, dec.WavAudioFormat, ErrUnsupportedFormat)
	}
	if !supportedBitDepth(int(dec.BitDepth)) {
		return nil, fmt.Errorf("%s: %d-bit integer samples: %w", path, dec.BitDepth, ErrUnsupportedFormat)
	}
	if dec.NumChans < 1 {
		return nil, fmt.Errorf("%s: no channels: %w", path, ErrUnsupportedFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &Buffer{
		Samples:    buf.Data,
		Channels:   int(dec.NumChans),
		SampleRate: int(dec.SampleRate),
		BitDepth:   int(dec.BitDepth),
	}, nil
}

// Encode writes buf as an integer PCM WAV file at path. Sample rate and
// bit depth carry over from the input unchanged; only the channel count
// reflects the processing result.
func Encode(path string, buf *Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, buf.SampleRate, buf.BitDepth, buf.Channels, wavFormatPCM)
	intBuf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: buf.Channels, SampleRate: buf.SampleRate},
		Data:           buf.Samples,
		SourceBitDepth: buf.BitDepth,
	}
	if err := enc.Write(intBuf); err != nil {
		enc.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalise %s: %w", path, err)
	}
	return nil
}

func supportedBitDepth(bits int) bool {
	switch bits {
	case 16, 24, 32:
		return true
	}
	return false
}
