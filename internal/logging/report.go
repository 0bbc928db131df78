// Package logging handles generation of analysis reports for processed audio files

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/linuxmatters/jivecutting/internal/config"
	"github.com/linuxmatters/jivecutting/internal/processor"
)

// ReportData contains everything a per-file trim report needs.
type ReportData struct {
	Version   string
	StartTime time.Time
	EndTime   time.Time
	Config    *config.Config
	Result    *processor.Result
}

// GenerateReport writes a human-readable trim report next to the first
// output file (or next to the input, when nothing was written). The report
// path replaces the audio extension with ".log".
func GenerateReport(data ReportData) error {
	if data.Result == nil {
		return fmt.Errorf("no result to report on")
	}

	path := reportPath(data.Result)
	content := renderReport(data)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// reportPath derives the .log path from the first output, falling back to
// the input path when the run produced no files.
func reportPath(result *processor.Result) string {
	base := result.InputPath
	if len(result.Outputs) > 0 {
		base = result.Outputs[0].Path
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".log"
}

func renderReport(data ReportData) string {
	var sb strings.Builder
	r := data.Result

	// Header
	sb.WriteString("JIVECUTTING TRIM REPORT\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")
	sb.WriteString(fmt.Sprintf("Version:    %s\n", data.Version))
	sb.WriteString(fmt.Sprintf("Input:      %s\n", r.InputPath))
	sb.WriteString(fmt.Sprintf("Started:    %s\n", data.StartTime.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Finished:   %s\n", data.EndTime.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Duration:   %s\n\n", data.EndTime.Sub(data.StartTime).Round(time.Millisecond)))

	sb.WriteString(renderSettings(data))
	sb.WriteString(renderChannels(r))
	sb.WriteString(renderRanges(r))
	sb.WriteString(renderOutputs(r))
	sb.WriteString(renderWarnings(r))

	return sb.String()
}

func renderSettings(data ReportData) string {
	var sb strings.Builder
	cfg := data.Config
	r := data.Result

	sb.WriteString("SETTINGS\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Silence floor:     %.1f dB (threshold %d at %d-bit)\n",
		cfg.DeviationDB, r.Threshold, r.BitDepth))
	sb.WriteString(fmt.Sprintf("Sample rate:       %d Hz\n", r.SampleRate))
	sb.WriteString(fmt.Sprintf("Overwrite input:   %t\n", cfg.Overwrite))
	sb.WriteString(fmt.Sprintf("Delete empty:      %t\n", cfg.DeleteEmpty))
	if cfg.AutoCut != nil {
		sb.WriteString(fmt.Sprintf("Auto-cut:          min silence %.0f ms, min segment %.0f ms, postfix %q, subdir %t, delete original %t\n",
			cfg.AutoCut.MinSilenceMs, cfg.AutoCut.MinSegmentMs, cfg.AutoCut.Postfix,
			cfg.AutoCut.Subdir, cfg.AutoCut.DeleteOriginal))
	} else {
		sb.WriteString("Auto-cut:          off\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderChannels(r *processor.Result) string {
	var sb strings.Builder

	sb.WriteString("CHANNELS\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")

	maxMag, err := processor.MaxMagnitude(r.BitDepth)
	if err != nil {
		maxMag = 0
	}

	table := &Table{Headers: []string{"Channel", "Samples", "Last sound", "Peak (dBFS)", "Status"}}
	for i, stat := range r.ChannelStats {
		status := "kept"
		if !stat.Kept {
			status = "dropped (silent)"
		}
		table.AddRow(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", stat.Samples),
			fmt.Sprintf("%d", stat.LastSound),
			formatDBFS(peakDBFS(stat.Peak, maxMag), 1),
			status,
		)
	}
	sb.WriteString(table.String())

	trimmed := r.SamplesIn - r.SamplesOut
	sb.WriteString(fmt.Sprintf("\nTrimmed %d trailing sample(s) (%s); %d of %d channel(s) kept.\n\n",
		trimmed, formatMs(trimmed, r.SampleRate), r.ChannelsOut, r.ChannelsIn))
	return sb.String()
}

func renderRanges(r *processor.Result) string {
	var sb strings.Builder

	sb.WriteString("SILENCE RANGES\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")

	switch {
	case r.Segmented:
		table := &Table{Headers: []string{"Range", "Start", "End", "Length"}}
		for i, rng := range r.Ranges {
			table.AddRow(
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d", rng.Start),
				fmt.Sprintf("%d", rng.End),
				fmt.Sprintf("%d (%s)", rng.Len(), formatMs(rng.Len(), r.SampleRate)),
			)
		}
		sb.WriteString(table.String())
	case r.Fallback != "":
		sb.WriteString(fmt.Sprintf("Segmentation fell back to a single output: %s.\n", r.Fallback))
	default:
		sb.WriteString("Segmentation disabled; trailing trim only.\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderOutputs(r *processor.Result) string {
	var sb strings.Builder

	sb.WriteString("OUTPUTS\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")

	if len(r.Outputs) == 0 {
		sb.WriteString("No output written.\n")
	} else {
		table := &Table{Headers: []string{"File", "Samples", "Range", "Duration"}}
		for _, out := range r.Outputs {
			table.AddRow(
				filepath.Base(out.Path),
				fmt.Sprintf("%d", out.Samples),
				fmt.Sprintf("[%d..%d]", out.Start, out.End),
				formatMs(out.Samples, r.SampleRate),
			)
		}
		sb.WriteString(table.String())
	}

	if r.InputDeleted {
		sb.WriteString("Input file deleted.\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderWarnings(r *processor.Result) string {
	if len(r.Warnings) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("WARNINGS\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for _, w := range r.Warnings {
		sb.WriteString("- " + w + "\n")
	}
	sb.WriteString("\n")
	return sb.String()
}
