package processor

// ChannelStat records what the trimmer saw in one input channel. The
// per-file report and the UI surface these alongside the trim result.
type ChannelStat struct {
	Samples   int   // samples before trimming
	LastSound int   // greatest index holding a non-silent sample; 0 when none exists
	Peak      int64 // largest absolute sample value seen
	Kept      bool  // false when the channel was dropped as fully silent
}

// TrimTrailingSilence drops fully-silent channels and truncates the
// survivors to the shared last-non-silent index.
//
// A channel's last-sound index is the greatest index whose sample exceeds
// the threshold in magnitude, defaulting to 0 when no sample does. The
// channel is fully silent when that index is 0 AND the sample at index 0
// is itself silent; only then is it dropped. A channel whose sole sound
// sits at index 0 therefore survives with a single sample.
//
// Survivors are truncated to max(last-sound)+1 over the surviving set.
// When every channel is fully silent the result is an empty channel set:
// a valid terminal state that triggers the empty-file policy downstream,
// not an error.
func TrimTrailingSilence[S Sample](channels [][]S, threshold S) ([][]S, []ChannelStat) {
	stats := make([]ChannelStat, len(channels))

	maxLastSound := 0
	for c, ch := range channels {
		stat := ChannelStat{Samples: len(ch)}
		for i, s := range ch {
			if !isSilent(s, threshold) {
				stat.LastSound = i
			}
			if mag := magnitude(s); mag > stat.Peak {
				stat.Peak = mag
			}
		}
		stat.Kept = len(ch) > 0 && !(stat.LastSound == 0 && isSilent(ch[0], threshold))
		stats[c] = stat

		if stat.Kept && stat.LastSound > maxLastSound {
			maxLastSound = stat.LastSound
		}
	}

	kept := make([][]S, 0, len(channels))
	for c, ch := range channels {
		if !stats[c].Kept {
			continue
		}
		end := maxLastSound + 1
		if end > len(ch) {
			end = len(ch)
		}
		trimmed := make([]S, end)
		copy(trimmed, ch[:end])
		kept = append(kept, trimmed)
	}
	return kept, stats
}
