package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/linuxmatters/jivecutting/internal/audio"
	"github.com/linuxmatters/jivecutting/internal/config"
)

// nonOverwriteSuffix is appended to the base name when the tool is not
// allowed to write back to the input path.
const nonOverwriteSuffix = "_stripped"

// assembler turns trimmed channels or segments into files on disk and
// applies the naming and deletion policies. Per-unit encode failures and
// filesystem failures become warnings on the result; they never abort the
// remaining units.
type assembler struct {
	inputPath string
	cfg       *config.Config
	buf       *audio.Buffer // carries the input's rate and depth
	result    *Result
}

// writeTrimmed writes the single non-segmented output. A trimmed buffer
// with no samples is never written; under the delete-empty policy the
// input file itself is removed instead.
func (a *assembler) writeTrimmed(channels [][]int) {
	if len(channels) == 0 || len(channels[0]) == 0 {
		if a.cfg.DeleteEmpty {
			a.deleteInput("it trimmed to nothing")
		}
		return
	}

	path := a.unitPath(filepath.Dir(a.inputPath), 0)
	if !a.encodeUnit(path, channels, 0, len(channels[0])-1) {
		return
	}

	// Delete-original applies on segmentation-fallback runs too, but never
	// when the output just replaced the input in place.
	if a.cfg.AutoCut != nil && a.cfg.AutoCut.DeleteOriginal && path != a.inputPath {
		a.deleteInput("its trimmed copy was written")
	}
}

// writeSegments writes one file per segment, numbering them with the
// configured postfix, then applies the delete-original policy.
func (a *assembler) writeSegments(segments []Segment[int]) {
	dir := a.segmentDir()

	wrote := 0
	wroteToInput := false
	for i, seg := range segments {
		if len(seg.Channels) == 0 || len(seg.Channels[0]) == 0 {
			continue
		}
		path := a.unitPath(dir, i+1)
		if !a.encodeUnit(path, seg.Channels, seg.Start, seg.End) {
			continue
		}
		wrote++
		if path == a.inputPath {
			wroteToInput = true
		}
	}

	if a.cfg.AutoCut.DeleteOriginal && wrote > 0 && !wroteToInput {
		a.deleteInput("its segments were written")
	}
}

// unitPath builds the output path for one unit. seq is the 1-based segment
// number; 0 means the single non-segmented output, which goes back to the
// input path itself when overwriting is allowed.
func (a *assembler) unitPath(dir string, seq int) string {
	base := strings.TrimSuffix(filepath.Base(a.inputPath), filepath.Ext(a.inputPath))
	ext := filepath.Ext(a.inputPath)

	name := base
	if !a.cfg.Overwrite {
		name += nonOverwriteSuffix
	}
	if seq > 0 {
		name += fmt.Sprintf("%s%02d", a.cfg.AutoCut.Postfix, seq)
	}
	return filepath.Join(dir, name+ext)
}

// segmentDir returns the directory segments are written to. With the
// subdirectory policy enabled it is created (idempotently) next to the
// input, named after the input's base name; if creation fails the policy
// degrades to writing beside the input, with a warning.
func (a *assembler) segmentDir() string {
	dir := filepath.Dir(a.inputPath)
	if !a.cfg.AutoCut.Subdir {
		return dir
	}

	base := strings.TrimSuffix(filepath.Base(a.inputPath), filepath.Ext(a.inputPath))
	sub := filepath.Join(dir, base)
	if err := os.MkdirAll(sub, 0o755); err != nil {
		a.warnf("cannot create segment directory %s: %v", sub, err)
		return dir
	}
	return sub
}

// encodeUnit interleaves the channels and writes them as one WAV file,
// recording the output on the result. Returns false when nothing was
// written.
func (a *assembler) encodeUnit(path string, channels [][]int, start, end int) bool {
	flat, err := Interleave(channels)
	if err != nil {
		a.warnf("cannot assemble %s: %v", path, err)
		return false
	}

	out := &audio.Buffer{
		Samples:    flat,
		Channels:   len(channels),
		SampleRate: a.buf.SampleRate,
		BitDepth:   a.buf.BitDepth,
	}
	if err := audio.Encode(path, out); err != nil {
		a.warnf("cannot write %s: %v", path, err)
		return false
	}

	a.result.Outputs = append(a.result.Outputs, OutputFile{
		Path:    path,
		Start:   start,
		End:     end,
		Samples: len(channels[0]),
	})
	return true
}

// deleteInput removes the input file, best-effort. why names the policy
// that asked for the removal, for the warning text.
func (a *assembler) deleteInput(why string) {
	if err := os.Remove(a.inputPath); err != nil {
		a.warnf("cannot delete %s (%s): %v", a.inputPath, why, err)
		return
	}
	a.result.InputDeleted = true
}

func (a *assembler) warnf(format string, args ...interface{}) {
	a.result.Warnings = append(a.result.Warnings, fmt.Sprintf(format, args...))
}
