package processor

import (
	"path/filepath"
	"testing"

	"github.com/linuxmatters/jivecutting/internal/audio"
)

// writeTestWAV encodes the given channels as a 16-bit 1 kHz WAV file under
// dir and returns its path. The low sample rate keeps fixture buffers tiny
// while still exercising the ms-to-samples conversions.
func writeTestWAV(t *testing.T, dir, name string, channels [][]int) string {
	t.Helper()

	flat, err := Interleave(channels)
	if err != nil {
		t.Fatalf("interleave fixture: %v", err)
	}

	path := filepath.Join(dir, name)
	buf := &audio.Buffer{
		Samples:    flat,
		Channels:   len(channels),
		SampleRate: 1000,
		BitDepth:   16,
	}
	if err := audio.Encode(path, buf); err != nil {
		t.Fatalf("encode fixture %s: %v", path, err)
	}
	return path
}

// readTestWAV decodes a WAV written by the pipeline back into per-channel
// samples for assertions.
func readTestWAV(t *testing.T, path string) ([][]int, *audio.Buffer) {
	t.Helper()

	buf, err := audio.Decode(path)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	channels, err := Deinterleave(buf.Samples, buf.Channels)
	if err != nil {
		t.Fatalf("deinterleave %s: %v", path, err)
	}
	return channels, buf
}

// sound and quiet build runs of constant samples for fixture channels.
func sound(n, value int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = value
	}
	return s
}

func quiet(n int) []int {
	return make([]int, n)
}

// join concatenates sample runs into one channel.
func join(runs ...[]int) []int {
	var ch []int
	for _, r := range runs {
		ch = append(ch, r...)
	}
	return ch
}
