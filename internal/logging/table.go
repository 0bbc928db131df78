// Package logging provides analysis report generation for processed audio files.
// This file contains reusable table formatting infrastructure for the
// fixed-width tables the reports are built from.

package logging

import (
	"fmt"
	"math"
	"strings"
)

// Table formats aligned fixed-width columns. The first column is
// left-aligned (labels); every further column is right-aligned (values).
type Table struct {
	Headers []string
	Rows    [][]string
}

// AddRow appends one row. Missing cells render as MissingValue.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// String renders the table with aligned columns.
func (t *Table) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	for i, h := range t.Headers {
		sb.WriteString(pad(h, widths[i], i == 0))
		if i < len(t.Headers)-1 {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		for i := range t.Headers {
			cell := MissingValue
			if i < len(row) && row[i] != "" {
				cell = row[i]
			}
			sb.WriteString(pad(cell, widths[i], i == 0))
			if i < len(t.Headers)-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// pad aligns a cell within its column: labels to the left, values to the
// right.
func pad(s string, width int, left bool) string {
	if left {
		return fmt.Sprintf("%-*s", width, s)
	}
	return fmt.Sprintf("%*s", width, s)
}

// =============================================================================
// Metric Formatting Helpers
// =============================================================================

// MissingValue is the placeholder for unavailable measurements
const MissingValue = "-"

// DigitalSilenceThreshold is the dBFS level below which we consider the signal
// to be digital silence. A true digital zero computes to -Inf; anything below
// -120 dBFS is effectively silent.
const DigitalSilenceThreshold = -120.0

// formatDBFS formats a dBFS value with special handling for digital silence.
// Shows "< -120" for values at or below the measurement floor.
func formatDBFS(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 1) {
		return MissingValue
	}
	if math.IsInf(value, -1) || value <= DigitalSilenceThreshold {
		return "< -120"
	}
	return fmt.Sprintf("%.*f", decimals, value)
}

// peakDBFS converts an absolute integer peak to dBFS against the maximum
// representable magnitude for the stream's bit depth.
func peakDBFS(peak, maxMagnitude int64) float64 {
	if peak <= 0 || maxMagnitude <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(float64(peak)/float64(maxMagnitude))
}

// formatMs renders a sample count as milliseconds at the given rate.
func formatMs(samples, sampleRate int) string {
	if sampleRate == 0 {
		return MissingValue
	}
	return fmt.Sprintf("%.1f ms", float64(samples)/float64(sampleRate)*1000)
}
