package processor

import (
	"testing"
)

func TestDetectSilences(t *testing.T) {
	tests := []struct {
		name      string
		channel   []int
		threshold int
		minLen    int
		want      []SilenceRange
	}{
		{
			name:      "single interior run",
			channel:   []int{500, 0, 0, 0, 500},
			threshold: 100,
			minLen:    3,
			want:      []SilenceRange{{Start: 1, End: 3}},
		},
		{
			name:      "run shorter than minimum is dropped",
			channel:   []int{500, 0, 0, 500},
			threshold: 100,
			minLen:    3,
			want:      nil,
		},
		{
			name:      "multiple runs ordered by start",
			channel:   []int{0, 0, 500, 500, 0, 0, 0, 500, 0, 0, 500},
			threshold: 100,
			minLen:    2,
			want:      []SilenceRange{{Start: 0, End: 1}, {Start: 4, End: 6}, {Start: 8, End: 9}},
		},
		{
			name:      "run still open at channel end is discarded",
			channel:   []int{500, 0, 0, 0, 0},
			threshold: 100,
			minLen:    2,
			want:      nil,
		},
		{
			name:      "threshold band is inclusive",
			channel:   []int{500, 100, -100, 100, 500},
			threshold: 100,
			minLen:    3,
			want:      []SilenceRange{{Start: 1, End: 3}},
		},
		{
			name:      "empty channel",
			channel:   nil,
			threshold: 100,
			minLen:    1,
			want:      nil,
		},
		{
			name:      "fully silent channel yields nothing (open run)",
			channel:   []int{0, 0, 0, 0},
			threshold: 100,
			minLen:    1,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectSilences(tt.channel, tt.threshold, tt.minLen)
			if !equalRanges(got, tt.want) {
				t.Errorf("DetectSilences() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectSilencesNeverEmitsShortRanges(t *testing.T) {
	// Property: no output range is ever shorter than minLen, for any input.
	channel := []int{500, 0, 500, 0, 0, 500, 0, 0, 0, 500, 0, 0, 0, 0, 500}
	for minLen := 1; minLen <= 5; minLen++ {
		for _, r := range DetectSilences(channel, 100, minLen) {
			if r.Len() < minLen {
				t.Errorf("minLen=%d: emitted range %v of length %d", minLen, r, r.Len())
			}
		}
	}
}

func TestDurationSamples(t *testing.T) {
	tests := []struct {
		ms         float64
		sampleRate int
		want       int
	}{
		{ms: 500, sampleRate: 44100, want: 22050},
		{ms: 1000, sampleRate: 48000, want: 48000},
		{ms: 0.5, sampleRate: 44100, want: 22},    // rounds down
		{ms: 10.9, sampleRate: 1000, want: 10},    // rounds down
		{ms: 0, sampleRate: 44100, want: 0},
	}
	for _, tt := range tests {
		if got := DurationSamples(tt.ms, tt.sampleRate); got != tt.want {
			t.Errorf("DurationSamples(%v, %d) = %d, want %d", tt.ms, tt.sampleRate, got, tt.want)
		}
	}
}

// equalRanges compares range slices, treating nil and empty as equal.
func equalRanges(a, b []SilenceRange) bool {
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
