package processor

import (
	"testing"
)

func TestDeinterleave(t *testing.T) {
	t.Run("splits flat stream by channel index", func(t *testing.T) {
		// Stereo: L R L R L R
		flat := []int{1, -1, 2, -2, 3, -3}
		channels, err := Deinterleave(flat, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(channels) != 2 {
			t.Fatalf("got %d channels, want 2", len(channels))
		}
		wantL := []int{1, 2, 3}
		wantR := []int{-1, -2, -3}
		if !equalSamples(channels[0], wantL) {
			t.Errorf("left channel = %v, want %v", channels[0], wantL)
		}
		if !equalSamples(channels[1], wantR) {
			t.Errorf("right channel = %v, want %v", channels[1], wantR)
		}
	})

	t.Run("mono passes through", func(t *testing.T) {
		flat := []int{4, 5, 6}
		channels, err := Deinterleave(flat, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(channels) != 1 || !equalSamples(channels[0], flat) {
			t.Errorf("got %v, want [[4 5 6]]", channels)
		}
	})

	t.Run("zero channels is an error", func(t *testing.T) {
		if _, err := Deinterleave([]int{1, 2}, 0); err == nil {
			t.Error("expected error for channel count 0")
		}
	})

	t.Run("negative channel count is an error", func(t *testing.T) {
		if _, err := Deinterleave([]int{1, 2}, -1); err == nil {
			t.Error("expected error for negative channel count")
		}
	})
}

func TestInterleave(t *testing.T) {
	t.Run("rebuilds the flat stream", func(t *testing.T) {
		channels := [][]int{{1, 2, 3}, {-1, -2, -3}}
		flat, err := Interleave(channels)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []int{1, -1, 2, -2, 3, -3}
		if !equalSamples(flat, want) {
			t.Errorf("got %v, want %v", flat, want)
		}
	})

	t.Run("mismatched channel lengths are an error", func(t *testing.T) {
		channels := [][]int{{1, 2, 3}, {-1, -2}}
		if _, err := Interleave(channels); err == nil {
			t.Error("expected error for mismatched lengths")
		}
	})

	t.Run("empty channel set interleaves to nothing", func(t *testing.T) {
		flat, err := Interleave[int](nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(flat) != 0 {
			t.Errorf("got %v, want empty", flat)
		}
	})
}

func TestInterleaveRoundTrip(t *testing.T) {
	// De-interleave then re-interleave is the identity for any channel
	// count when the stream length is a multiple of that count.
	for n := 1; n <= 5; n++ {
		flat := make([]int, n*7)
		for i := range flat {
			flat[i] = (i * 31) % 257 // arbitrary but deterministic
			if i%3 == 0 {
				flat[i] = -flat[i]
			}
		}

		channels, err := Deinterleave(flat, n)
		if err != nil {
			t.Fatalf("Deinterleave(%d channels): %v", n, err)
		}
		back, err := Interleave(channels)
		if err != nil {
			t.Fatalf("Interleave(%d channels): %v", n, err)
		}
		if !equalSamples(back, flat) {
			t.Errorf("round trip with %d channels: got %v, want %v", n, back, flat)
		}
	}
}

func TestInterleaveRoundTripInt16(t *testing.T) {
	// The kernel is generic; make sure narrower sample types behave the same.
	flat := []int16{100, -100, 200, -200}
	channels, err := Deinterleave(flat, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := Interleave(channels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalSamples(back, flat) {
		t.Errorf("round trip: got %v, want %v", back, flat)
	}
}

// equalSamples compares two sample slices, treating nil and empty as equal.
func equalSamples[S Sample](a, b []S) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
