package processor

import "sort"

// MergeSilenceRanges reconciles per-channel silence ranges into one
// canonical list usable for cutting every channel at the same points.
// Channels rarely go silent at exactly the same sample, so the base list
// is widened to the union of the overlapping silence any channel reported.
//
// Policy:
//   - No channel produced ranges: the result is nil and segmentation falls
//     back to a single non-segmented output.
//   - Exactly one channel produced ranges: that list is canonical.
//   - Otherwise the list with the most ranges becomes the base (ties going
//     to the first channel encountered). Each base range is expanded to
//     cover every range, from any channel, that overlaps it. Ranges that
//     start after the base range ends or end before it starts are never
//     consulted. Scanning includes the base channel itself; a range can
//     only re-assert its own bounds, so self-comparison is a no-op.
//
// The expanded list is then normalised: sorted by start with overlapping
// or touching ranges coalesced, restoring the disjoint ordered invariant
// the segmenter relies on. Inputs are never mutated.
func MergeSilenceRanges(perChannel [][]SilenceRange) []SilenceRange {
	base := longestRangeList(perChannel)
	if len(base) == 0 {
		return nil
	}

	merged := make([]SilenceRange, len(base))
	copy(merged, base)

	for i := range merged {
		for _, ranges := range perChannel {
			for _, other := range ranges {
				if !merged[i].Overlaps(other) {
					continue
				}
				if other.Start < merged[i].Start {
					merged[i].Start = other.Start
				}
				if other.End > merged[i].End {
					merged[i].End = other.End
				}
			}
		}
	}
	return normalizeRanges(merged)
}

// longestRangeList returns the per-channel list with the most ranges,
// resolving ties to the first channel encountered.
func longestRangeList(perChannel [][]SilenceRange) []SilenceRange {
	var base []SilenceRange
	for _, ranges := range perChannel {
		if len(ranges) > len(base) {
			base = ranges
		}
	}
	return base
}

// normalizeRanges sorts ranges by start index and coalesces any that
// overlap or touch, returning a new slice.
func normalizeRanges(ranges []SilenceRange) []SilenceRange {
	if len(ranges) == 0 {
		return nil
	}

	sorted := make([]SilenceRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	out := sorted[:1]
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r.Start <= last.End+1 {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	return out
}
