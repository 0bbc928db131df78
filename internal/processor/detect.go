package processor

// SilenceRange is one contiguous run of silent samples, inclusive at both
// ends, over a single channel's sample indices.
type SilenceRange struct {
	Start int
	End   int
}

// Len returns the number of samples the range covers.
func (r SilenceRange) Len() int { return r.End - r.Start + 1 }

// Contains reports whether index i lies inside the range.
func (r SilenceRange) Contains(i int) bool { return i >= r.Start && i <= r.End }

// Overlaps reports whether r and other share at least one sample index.
func (r SilenceRange) Overlaps(other SilenceRange) bool {
	return other.Start <= r.End && other.End >= r.Start
}

// DurationSamples converts a millisecond duration to a whole number of
// samples at the given rate, rounding down. Both the minimum-silence and
// minimum-segment policies use this conversion.
func DurationSamples(ms float64, sampleRate int) int {
	return int(ms * float64(sampleRate) / 1000.0)
}

// DetectSilences scans one channel left to right and returns every
// contiguous run of silent samples at least minLen long, ordered by start
// index. Entering silence opens a candidate run; every further silent
// sample extends its end; leaving silence closes and filters it.
//
// A run still open when the channel ends is discarded: silence against the
// trimmed end belongs to the trailing trim, not to a cut point. Channels
// whose own last sound sits before the shared trim point still end that way.
func DetectSilences[S Sample](channel []S, threshold S, minLen int) []SilenceRange {
	var ranges []SilenceRange
	var run SilenceRange
	inSilence := false

	for i, s := range channel {
		if isSilent(s, threshold) {
			if inSilence {
				run.End = i
			} else {
				run = SilenceRange{Start: i, End: i}
				inSilence = true
			}
			continue
		}
		if inSilence {
			if run.Len() >= minLen {
				ranges = append(ranges, run)
			}
			inSilence = false
		}
	}
	return ranges
}
