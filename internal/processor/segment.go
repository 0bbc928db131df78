package processor

// Segment is one exportable slice of audio: every channel cut to the same
// inclusive sample index range of the source buffer.
type Segment[S Sample] struct {
	Channels [][]S
	Start    int // first source sample index
	End      int // last source sample index, inclusive
}

// FilterRanges applies the cut-point policies to the canonical range list
// and returns the ranges worth cutting at. totalLen is the per-channel
// sample count of the trimmed buffer.
//
// Two policies apply, in order:
//
//  1. Ranges shorter than minSilence are dropped. The detector already
//     enforced this per channel, but normalisation after the cross-channel
//     merge can reshape ranges, so the bound is re-checked here.
//  2. Ranges that would produce a too-short segment are dropped: the first
//     range when the leading segment before it would be shorter than
//     minSegment, the last range when the trailing segment after it would
//     be, and for each adjacent pair the LATER range when the gap between
//     them would be. Dropping the later range merges the two silences'
//     effect by removing the cut point between them.
//
// Violations are collected against the unmodified list and applied in one
// filtering pass, so earlier removals never shift the indices later
// decisions are based on. An empty result means segmentation failed for
// this file and the caller falls back to the single trimmed output.
func FilterRanges(ranges []SilenceRange, totalLen, minSilence, minSegment int) []SilenceRange {
	kept := make([]SilenceRange, 0, len(ranges))
	for _, r := range ranges {
		if r.Len() >= minSilence {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	drop := make(map[int]bool)
	if kept[0].Start < minSegment {
		drop[0] = true
	}
	if totalLen-kept[len(kept)-1].End < minSegment {
		drop[len(kept)-1] = true
	}
	for i := 0; i+1 < len(kept); i++ {
		if kept[i+1].Start-kept[i].End < minSegment {
			drop[i+1] = true
		}
	}

	var out []SilenceRange
	for i, r := range kept {
		if !drop[i] {
			out = append(out, r)
		}
	}
	return out
}

// SliceSegments cuts the channels at the surviving silence ranges. Each
// segment spans from the previous cut point (initially sample 0) through
// the current range's start index, inclusive; the cut point then moves to
// the range's end index. After the last range one final segment covers the
// remainder through the final sample. All channels are sliced identically.
func SliceSegments[S Sample](channels [][]S, ranges []SilenceRange) []Segment[S] {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil
	}
	last := len(channels[0]) - 1

	var segments []Segment[S]
	cut := 0
	for _, r := range ranges {
		if r.Start < cut {
			// Cannot occur on a normalised range list; skip rather than
			// slice backwards.
			continue
		}
		segments = append(segments, sliceChannels(channels, cut, min(r.Start, last)))
		cut = r.End
	}
	if cut <= last {
		segments = append(segments, sliceChannels(channels, cut, last))
	}
	return segments
}

// sliceChannels copies the inclusive [start, end] index range out of every
// channel.
func sliceChannels[S Sample](channels [][]S, start, end int) Segment[S] {
	cut := make([][]S, len(channels))
	for c, ch := range channels {
		sub := make([]S, end-start+1)
		copy(sub, ch[start:end+1])
		cut[c] = sub
	}
	return Segment[S]{Channels: cut, Start: start, End: end}
}
