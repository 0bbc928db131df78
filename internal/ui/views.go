package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderProcessingView renders the main processing view
func renderProcessingView(m Model) string {
	var b strings.Builder

	// Header
	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	// File queue
	b.WriteString(renderFileQueue(m))
	b.WriteString("\n\n")

	// Overall progress
	b.WriteString(renderOverallProgress(m))

	return b.String()
}

// renderHeader renders the application header
func renderHeader(m Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#A40000")).
		Render("Jivecutting ✂ - WAV Silence Trimmer")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render(fmt.Sprintf("Processing %d file(s) | %s", m.TotalFiles, m.Settings))

	return title + "\n" + subtitle
}

// renderFileQueue renders the list of files with their status
func renderFileQueue(m Model) string {
	var b strings.Builder

	for i, file := range m.Files {
		b.WriteString(renderFileEntry(file, i, m.CurrentIndex))
		b.WriteString("\n")
	}

	return b.String()
}

// renderFileEntry renders a single file entry in the queue
func renderFileEntry(file FileProgress, index int, currentIndex int) string {
	fileName := filepath.Base(file.InputPath)

	switch file.Status {
	case StatusComplete:
		// ✓ completed file with summary
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
		return fmt.Sprintf(" %s %s\n   %s", icon, fileName, completionLine(file))

	case StatusDecoding, StatusAnalyzing, StatusEncoding:
		// ⚙ active file with detailed progress
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("⚙")
		return fmt.Sprintf(" %s %s\n%s", icon, fileName, renderFileDetails(file))

	case StatusSkipped:
		// − skipped file (unsupported format)
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("−")
		return fmt.Sprintf(" %s %s\n   Skipped: %v", icon, fileName, file.Err)

	case StatusError:
		// ✗ failed file
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
		return fmt.Sprintf(" %s %s\n   Error: %v", icon, fileName, file.Err)

	default:
		// ○ queued file
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("○")
		return fmt.Sprintf(" %s %s\n   Queued...", icon, fileName)
	}
}

// completionLine summarises a completed file's result in one line
func completionLine(file FileProgress) string {
	r := file.Result
	if r == nil {
		return "done"
	}

	if len(r.Outputs) == 0 {
		if r.InputDeleted {
			return "trimmed to nothing | input deleted"
		}
		return "trimmed to nothing | no output written"
	}

	trimmed := r.SamplesIn - r.SamplesOut
	dropped := r.ChannelsIn - r.ChannelsOut
	line := fmt.Sprintf("%d sample(s) trimmed | %d channel(s) dropped", trimmed, dropped)
	if r.Segmented {
		line += fmt.Sprintf(" | %d segment(s)", len(r.Outputs))
	} else if r.Fallback != "" {
		line += " | not split: " + r.Fallback
	}
	if len(r.Warnings) > 0 {
		line += fmt.Sprintf(" | %d warning(s)", len(r.Warnings))
	}
	return line
}

// renderFileDetails renders detailed progress for the active file
func renderFileDetails(file FileProgress) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#A40000")).
		Padding(0, 1).
		Width(60)

	var content strings.Builder

	stageName := file.StageName
	if stageName == "" {
		stageName = "Starting"
	}
	content.WriteString(fmt.Sprintf("Stage %d/3: %s\n", file.Stage, stageName))

	// Progress bar
	content.WriteString(renderProgressBar(file.Fraction, 40))
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("⏱  Elapsed: %.1fs", file.ElapsedTime.Seconds()))

	return box.Render(content.String())
}

// renderProgressBar renders a progress bar
func renderProgressBar(progress float64, width int) string {
	filled := int(progress * float64(width))
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	percentage := int(progress * 100)

	return fmt.Sprintf("%s %d%%", bar, percentage)
}

// renderOverallProgress renders the overall progress footer
func renderOverallProgress(m Model) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#888888")).
		Padding(0, 1).
		Width(60)

	var content string
	if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Files) {
		currentFile := m.CurrentIndex + 1 // 1-indexed for display
		content = fmt.Sprintf("Processing file %d of %d (%d complete)",
			currentFile, m.TotalFiles, m.CompletedFiles)
	} else {
		content = fmt.Sprintf("Overall Progress: %d/%d complete", m.CompletedFiles, m.TotalFiles)
	}

	return box.Render(content)
}

// renderCompletionSummary renders the final completion summary
func renderCompletionSummary(m Model) string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00AA00")).
		Render("✨ Processing Complete!")
	b.WriteString(header)
	b.WriteString("\n\n")

	// Summary for each file
	for _, file := range m.Files {
		switch file.Status {
		case StatusComplete:
			b.WriteString(renderCompletedFile(file))
		case StatusSkipped:
			icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("−")
			b.WriteString(fmt.Sprintf(" %s %s skipped: %v\n", icon, filepath.Base(file.InputPath), file.Err))
		case StatusError:
			icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
			b.WriteString(fmt.Sprintf(" %s %s failed: %v\n", icon, filepath.Base(file.InputPath), file.Err))
		}
	}

	// Overall summary
	var samplesTrimmed, channelsDropped, segmentsWritten, inputsDeleted int
	for _, file := range m.Files {
		if file.Result == nil {
			continue
		}
		samplesTrimmed += file.Result.SamplesIn - file.Result.SamplesOut
		channelsDropped += file.Result.ChannelsIn - file.Result.ChannelsOut
		if file.Result.Segmented {
			segmentsWritten += len(file.Result.Outputs)
		}
		if file.Result.InputDeleted {
			inputsDeleted++
		}
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d processed, %d skipped, %d failed in %s\n",
		m.CompletedFiles, m.SkippedFiles, m.FailedFiles,
		time.Since(m.StartTime).Round(time.Millisecond)))
	b.WriteString(fmt.Sprintf("%d sample(s) trimmed, %d channel(s) dropped, %d segment(s) written, %d input(s) deleted\n",
		samplesTrimmed, channelsDropped, segmentsWritten, inputsDeleted))

	return b.String()
}

// renderCompletedFile renders a summary for a completed file
func renderCompletedFile(file FileProgress) string {
	fileName := filepath.Base(file.InputPath)
	icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")

	line := fmt.Sprintf(" %s %s\n   %s\n", icon, fileName, completionLine(file))
	if file.Result != nil {
		for _, out := range file.Result.Outputs {
			line += fmt.Sprintf("   → %s\n", out.Path)
		}
	}
	return line
}
