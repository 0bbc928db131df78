package processor

import (
	"fmt"

	"github.com/linuxmatters/jivecutting/internal/audio"
	"github.com/linuxmatters/jivecutting/internal/config"
)

// Processing stages reported through the progress callback.
const (
	StageDecode  = 1
	StageAnalyze = 2
	StageEncode  = 3
)

// ProgressFunc receives coarse progress updates while a file is processed.
type ProgressFunc func(stage int, stageName string, fraction float64)

// OutputFile records one unit written by the assembler.
type OutputFile struct {
	Path    string
	Start   int // first source sample index covered by this unit
	End     int // last source sample index, inclusive
	Samples int // per-channel length
}

// Result summarises one file's run for the UI and the report. Encode and
// filesystem failures land in Warnings rather than aborting the run; only
// decode and format errors make ProcessFile return an error.
type Result struct {
	InputPath  string
	SampleRate int
	BitDepth   int
	Threshold  int64 // absolute sample threshold derived from the dB floor

	ChannelStats []ChannelStat
	ChannelsIn   int
	ChannelsOut  int
	SamplesIn    int // per channel, before trimming
	SamplesOut   int // per channel, after trimming

	// Segmentation outcome. Ranges holds the canonical post-filter cut
	// ranges when Segmented is true; Fallback names the reason
	// segmentation was abandoned for this file, if it was attempted.
	Segmented bool
	Ranges    []SilenceRange
	Fallback  string

	Outputs      []OutputFile
	InputDeleted bool
	Warnings     []string
}

// ProcessFile runs the whole pipeline on one WAV file: decode,
// de-interleave, trim trailing silence, optionally detect/merge/filter
// interior silences and slice segments, then write the outputs and apply
// the deletion policies. Files are fully materialised in memory; nothing
// is shared between calls except the read-only cfg.
func ProcessFile(inputPath string, cfg *config.Config, progress ProgressFunc) (*Result, error) {
	report := func(stage int, name string, fraction float64) {
		if progress != nil {
			progress(stage, name, fraction)
		}
	}

	report(StageDecode, "Decoding", 0.0)
	buf, err := audio.Decode(inputPath)
	if err != nil {
		return nil, err
	}
	report(StageDecode, "Decoding", 1.0)

	threshold, err := DeviationThreshold(cfg.DeviationDB, buf.BitDepth)
	if err != nil {
		// Decode already rejects these depths; kept as a guard.
		return nil, fmt.Errorf("%s: %w", inputPath, err)
	}

	report(StageAnalyze, "Analyzing", 0.0)
	channels, err := Deinterleave(buf.Samples, buf.Channels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inputPath, err)
	}

	t := int(threshold)
	trimmed, stats := TrimTrailingSilence(channels, t)

	result := &Result{
		InputPath:    inputPath,
		SampleRate:   buf.SampleRate,
		BitDepth:     buf.BitDepth,
		Threshold:    threshold,
		ChannelStats: stats,
		ChannelsIn:   len(channels),
		ChannelsOut:  len(trimmed),
		SamplesIn:    buf.SamplesPerChannel(),
	}
	if len(trimmed) > 0 {
		result.SamplesOut = len(trimmed[0])
	}

	var segments []Segment[int]
	if cfg.AutoCut != nil && len(trimmed) > 0 {
		segments = cutSegments(trimmed, t, buf.SampleRate, cfg.AutoCut, result)
	}
	report(StageAnalyze, "Analyzing", 1.0)

	report(StageEncode, "Encoding", 0.0)
	asm := &assembler{inputPath: inputPath, cfg: cfg, buf: buf, result: result}
	if result.Segmented {
		asm.writeSegments(segments)
	} else {
		asm.writeTrimmed(trimmed)
	}
	report(StageEncode, "Encoding", 1.0)

	return result, nil
}

// cutSegments runs detection, cross-channel merging and filtering over the
// trimmed channels. On success it marks the result segmented and returns
// the slices; on fallback it records the reason and returns nil, leaving
// the caller to write the single trimmed buffer instead.
func cutSegments(trimmed [][]int, threshold, sampleRate int, ac *config.AutoCut, result *Result) []Segment[int] {
	minSilence := DurationSamples(ac.MinSilenceMs, sampleRate)
	minSegment := DurationSamples(ac.MinSegmentMs, sampleRate)

	perChannel := make([][]SilenceRange, len(trimmed))
	for c, ch := range trimmed {
		perChannel[c] = DetectSilences(ch, threshold, minSilence)
	}

	merged := MergeSilenceRanges(perChannel)
	if len(merged) == 0 {
		result.Fallback = "no qualifying silence detected"
		return nil
	}

	ranges := FilterRanges(merged, len(trimmed[0]), minSilence, minSegment)
	if len(ranges) == 0 {
		result.Fallback = "no silence survived the segment-length policy"
		return nil
	}

	result.Segmented = true
	result.Ranges = ranges
	return SliceSegments(trimmed, ranges)
}
