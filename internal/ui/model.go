// Package ui provides the Bubbletea terminal user interface for jivecutting
package ui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linuxmatters/jivecutting/internal/processor"
)

var debugLog *os.File

func init() {
	debugLog, _ = os.OpenFile("jivecutting-ui-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

func log(format string, args ...interface{}) {
	if debugLog != nil {
		fmt.Fprintf(debugLog, format+"\n", args...)
	}
}

// FileStatus represents the processing state of a single file
type FileStatus int

const (
	StatusQueued FileStatus = iota
	StatusDecoding
	StatusAnalyzing
	StatusEncoding
	StatusComplete
	StatusSkipped
	StatusError
)

// FileProgress tracks progress for a single audio file
type FileProgress struct {
	InputPath string
	Status    FileStatus

	// Stage tracking
	Stage     int // 1 decode, 2 analyze, 3 encode
	StageName string

	// Progress tracking (fraction-based)
	Fraction    float64 // 0.0 to 1.0
	StartTime   time.Time
	ElapsedTime time.Duration

	// Completion results
	Result *processor.Result
	Err    error
}

// Model is the Bubbletea model for the processing UI
type Model struct {
	// File queue
	Files          []FileProgress
	CurrentIndex   int
	TotalFiles     int
	CompletedFiles int
	SkippedFiles   int
	FailedFiles    int

	// Effective settings, rendered under the header
	Settings string

	// Global state
	StartTime time.Time
	Done      bool

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates a new UI model with the given input files. settings is
// a one-line summary of the effective configuration for the header.
func NewModel(inputFiles []string, settings string) Model {
	files := make([]FileProgress, len(inputFiles))
	for i, path := range inputFiles {
		files[i] = FileProgress{
			InputPath: path,
			Status:    StatusQueued,
		}
	}

	return Model{
		Files:        files,
		CurrentIndex: -1, // No file processing yet
		TotalFiles:   len(inputFiles),
		Settings:     settings,
		StartTime:    time.Now(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		log("[DEBUG] Window size: %dx%d", m.Width, m.Height)

	case ProgressMsg:
		log("[DEBUG] ProgressMsg received: Stage %d, %.1f%%", msg.Stage, msg.Fraction*100)
		if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Files) {
			m.Files[m.CurrentIndex] = updateFileProgress(m.Files[m.CurrentIndex], msg)
		}

	case FileStartMsg:
		log("[DEBUG] FileStartMsg received: index=%d, file=%s", msg.FileIndex, msg.FileName)
		m.CurrentIndex = msg.FileIndex
		m.Files[m.CurrentIndex].Status = StatusDecoding
		m.Files[m.CurrentIndex].StartTime = time.Now()

	case FileCompleteMsg:
		log("[DEBUG] FileCompleteMsg received: index=%d", msg.FileIndex)
		if msg.FileIndex >= 0 && msg.FileIndex < len(m.Files) {
			fp := &m.Files[msg.FileIndex]
			fp.Result = msg.Result
			fp.Err = msg.Err
			fp.ElapsedTime = time.Since(fp.StartTime)

			switch {
			case msg.Skipped:
				fp.Status = StatusSkipped
				m.SkippedFiles++
			case msg.Err != nil:
				fp.Status = StatusError
				m.FailedFiles++
			default:
				fp.Status = StatusComplete
				m.CompletedFiles++
			}
		}

	case AllCompleteMsg:
		log("[DEBUG] AllCompleteMsg received")
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.Width == 0 {
		return fmt.Sprintf("Initializing...\nFiles: %d\nCurrent: %d\n", len(m.Files), m.CurrentIndex)
	}

	if m.Done {
		return renderCompletionSummary(m)
	}

	return renderProcessingView(m)
}

// updateFileProgress updates a FileProgress based on a ProgressMsg
func updateFileProgress(fp FileProgress, msg ProgressMsg) FileProgress {
	if msg.Stage != fp.Stage {
		log("[UI] Stage transition: %d -> %d", fp.Stage, msg.Stage)
	}

	fp.Fraction = msg.Fraction
	fp.Stage = msg.Stage
	fp.StageName = msg.StageName
	fp.ElapsedTime = time.Since(fp.StartTime)

	switch msg.Stage {
	case processor.StageDecode:
		fp.Status = StatusDecoding
	case processor.StageAnalyze:
		fp.Status = StatusAnalyzing
	case processor.StageEncode:
		fp.Status = StatusEncoding
	}

	return fp
}
