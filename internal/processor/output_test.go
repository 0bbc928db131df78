package processor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/linuxmatters/jivecutting/internal/audio"
	"github.com/linuxmatters/jivecutting/internal/config"
)

func newTestAssembler(inputPath string, cfg *config.Config) *assembler {
	return &assembler{
		inputPath: inputPath,
		cfg:       cfg,
		buf:       &audio.Buffer{SampleRate: 1000, BitDepth: 16},
		result:    &Result{InputPath: inputPath},
	}
}

func TestUnitPath(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		overwrite bool
		postfix   string
		seq       int
		want      string
	}{
		{
			name:  "plain trimmed output gets the stripped suffix",
			input: "/audio/take.wav",
			seq:   0,
			want:  "/audio/take_stripped.wav",
		},
		{
			name:      "overwrite writes back to the input",
			input:     "/audio/take.wav",
			overwrite: true,
			seq:       0,
			want:      "/audio/take.wav",
		},
		{
			name:    "segments get the postfix and a two-digit number",
			input:   "/audio/take.wav",
			postfix: "_part",
			seq:     1,
			want:    "/audio/take_stripped_part01.wav",
		},
		{
			name:      "segment numbering with overwrite drops the suffix",
			input:     "/audio/take.wav",
			overwrite: true,
			postfix:   "_part",
			seq:       12,
			want:      "/audio/take_part12.wav",
		},
		{
			name:  "extension case is preserved",
			input: "/audio/TAKE.WAV",
			seq:   0,
			want:  "/audio/TAKE_stripped.WAV",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Overwrite = tt.overwrite
			if tt.seq > 0 {
				cfg.AutoCut = &config.AutoCut{Postfix: tt.postfix}
			}
			a := newTestAssembler(tt.input, &cfg)

			got := a.unitPath(filepath.Dir(tt.input), tt.seq)
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("unitPath = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSegmentDir(t *testing.T) {
	t.Run("without subdir segments go beside the input", func(t *testing.T) {
		dir := t.TempDir()
		cfg := config.Default()
		cfg.AutoCut = &config.AutoCut{Postfix: "_part"}
		a := newTestAssembler(filepath.Join(dir, "take.wav"), &cfg)

		if got := a.segmentDir(); got != dir {
			t.Errorf("segmentDir = %s, want %s", got, dir)
		}
	})

	t.Run("subdir is created and named after the input", func(t *testing.T) {
		dir := t.TempDir()
		cfg := config.Default()
		cfg.AutoCut = &config.AutoCut{Postfix: "_part", Subdir: true}
		a := newTestAssembler(filepath.Join(dir, "take.wav"), &cfg)

		want := filepath.Join(dir, "take")
		if got := a.segmentDir(); got != want {
			t.Errorf("segmentDir = %s, want %s", got, want)
		}
		info, err := os.Stat(want)
		if err != nil || !info.IsDir() {
			t.Errorf("subdirectory not created: %v", err)
		}

		// Idempotent on the second call.
		if got := a.segmentDir(); got != want {
			t.Errorf("second segmentDir = %s, want %s", got, want)
		}
	})

	t.Run("creation failure degrades to the parent with a warning", func(t *testing.T) {
		dir := t.TempDir()
		// Occupy the subdirectory name with a file so MkdirAll fails.
		if err := os.WriteFile(filepath.Join(dir, "take"), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		cfg := config.Default()
		cfg.AutoCut = &config.AutoCut{Postfix: "_part", Subdir: true}
		a := newTestAssembler(filepath.Join(dir, "take.wav"), &cfg)

		if got := a.segmentDir(); got != dir {
			t.Errorf("segmentDir = %s, want fallback to %s", got, dir)
		}
		if len(a.result.Warnings) != 1 {
			t.Errorf("got %d warnings, want 1", len(a.result.Warnings))
		}
	})
}

func TestWriteSegmentsEncodeFailureContinues(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.AutoCut = &config.AutoCut{Postfix: "_part", Subdir: true}
	a := newTestAssembler(filepath.Join(dir, "take.wav"), &cfg)

	segments := []Segment[int]{
		{Channels: [][]int{sound(10, 1000)}, Start: 0, End: 9},
		{Channels: [][]int{sound(10, 1000)}, Start: 20, End: 29},
	}

	// Make the first segment's path unwritable by occupying it with a
	// directory; the second must still be written.
	sub := filepath.Join(dir, "take")
	if err := os.MkdirAll(filepath.Join(sub, "take_stripped_part01.wav"), 0o755); err != nil {
		t.Fatal(err)
	}

	a.writeSegments(segments)

	if len(a.result.Outputs) != 1 {
		t.Fatalf("got %d outputs, want 1: %+v", len(a.result.Outputs), a.result.Outputs)
	}
	if len(a.result.Warnings) == 0 {
		t.Error("expected a warning for the failed segment")
	}
	want := filepath.Join(sub, "take_stripped_part02.wav")
	if a.result.Outputs[0].Path != want {
		t.Errorf("output = %s, want %s", a.result.Outputs[0].Path, want)
	}
}

func TestDeleteInputIsBestEffort(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	a := newTestAssembler(filepath.Join(dir, "missing.wav"), &cfg)

	a.deleteInput("test")
	if a.result.InputDeleted {
		t.Error("deletion of a missing file should not be reported as done")
	}
	if len(a.result.Warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(a.result.Warnings))
	}
}
