package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func encodeFixture(t *testing.T, buf *Buffer) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.wav")
	if err := Encode(path, buf); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return path
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		channels int
		bitDepth int
		samples  []int
	}{
		{
			name:     "mono 16-bit",
			channels: 1,
			bitDepth: 16,
			samples:  []int{0, 100, -100, 32767, -32767, 5},
		},
		{
			name:     "stereo 16-bit interleaved",
			channels: 2,
			bitDepth: 16,
			samples:  []int{1, -1, 2, -2, 3, -3},
		},
		{
			name:     "mono 24-bit",
			channels: 1,
			bitDepth: 24,
			samples:  []int{0, 8388607, -8388607, 1234},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Buffer{
				Samples:    tt.samples,
				Channels:   tt.channels,
				SampleRate: 44100,
				BitDepth:   tt.bitDepth,
			}
			path := encodeFixture(t, in)

			out, err := Decode(path)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if out.Channels != tt.channels {
				t.Errorf("channels = %d, want %d", out.Channels, tt.channels)
			}
			if out.SampleRate != 44100 {
				t.Errorf("sample rate = %d, want 44100", out.SampleRate)
			}
			if out.BitDepth != tt.bitDepth {
				t.Errorf("bit depth = %d, want %d", out.BitDepth, tt.bitDepth)
			}
			if len(out.Samples) != len(tt.samples) {
				t.Fatalf("got %d samples, want %d", len(out.Samples), len(tt.samples))
			}
			for i, want := range tt.samples {
				if out.Samples[i] != want {
					t.Errorf("sample %d = %d, want %d", i, out.Samples[i], want)
				}
			}
		})
	}
}

func TestDecodeRejectsUnsupportedBitDepth(t *testing.T) {
	in := &Buffer{
		Samples:    []int{1, 2, 3, 4},
		Channels:   1,
		SampleRate: 8000,
		BitDepth:   8,
	}
	path := encodeFixture(t, in)

	_, err := Decode(path)
	if err == nil {
		t.Fatal("expected an error for 8-bit samples")
	}
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error %v is not ErrUnsupportedFormat", err)
	}
}

func TestDecodeRejectsNonWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-audio.wav")
	if err := os.WriteFile(path, []byte("this is not a wave file"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Decode(path)
	if err == nil {
		t.Fatal("expected an error for a non-WAV file")
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		t.Error("a corrupt container should not be classified as an unsupported format")
	}
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "missing.wav"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestBufferSamplesPerChannel(t *testing.T) {
	tests := []struct {
		name     string
		buf      Buffer
		want     int
		duration time.Duration
	}{
		{
			name:     "stereo",
			buf:      Buffer{Samples: make([]int, 8), Channels: 2, SampleRate: 4},
			want:     4,
			duration: time.Second,
		},
		{
			name:     "mono",
			buf:      Buffer{Samples: make([]int, 500), Channels: 1, SampleRate: 1000},
			want:     500,
			duration: 500 * time.Millisecond,
		},
		{
			name: "zero channels",
			buf:  Buffer{Samples: make([]int, 8)},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.buf.SamplesPerChannel(); got != tt.want {
				t.Errorf("SamplesPerChannel = %d, want %d", got, tt.want)
			}
			if got := tt.buf.Duration(); got != tt.duration {
				t.Errorf("Duration = %v, want %v", got, tt.duration)
			}
		})
	}
}
