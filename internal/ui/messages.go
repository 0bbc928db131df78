package ui

import (
	"github.com/linuxmatters/jivecutting/internal/processor"
)

// ProgressMsg represents a progress update from the processor
type ProgressMsg struct {
	Stage     int     // 1 decode, 2 analyze, 3 encode
	StageName string  // "Decoding", "Analyzing" or "Encoding"
	Fraction  float64 // 0.0 to 1.0
}

// FileStartMsg indicates a new file has started processing
type FileStartMsg struct {
	FileIndex int
	FileName  string
}

// FileCompleteMsg indicates a file has finished processing
type FileCompleteMsg struct {
	FileIndex int
	Result    *processor.Result
	Skipped   bool // unsupported format, not a failure
	Err       error
}

// AllCompleteMsg indicates all files have been processed
type AllCompleteMsg struct{}
