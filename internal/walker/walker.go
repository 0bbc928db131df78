// Package walker expands command-line paths into the ordered list of WAV
// files to process, honouring .wavignore files.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreFileName is looked up in every directory the walker enters. It
// uses gitignore syntax; a file in a subdirectory only governs paths below
// it, and the deepest file with an opinion wins.
const IgnoreFileName = ".wavignore"

// IsWAV reports whether path names a WAV file, matching the extension
// case-insensitively.
func IsWAV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".wav")
}

// Collect expands paths (files or directories) into WAV candidates in
// deterministic order: explicit paths in argument order, directory
// contents in lexical walk order. Explicit non-WAV files are silently
// skipped. Hidden files are not treated specially. An empty path list
// scans the current directory.
func Collect(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			if IsWAV(p) {
				files = append(files, p)
			}
			continue
		}
		walked, err := walkDir(p)
		if err != nil {
			return nil, err
		}
		files = append(files, walked...)
	}
	return files, nil
}

// matcher pairs a compiled ignore file with the directory it governs.
type matcher struct {
	dir  string
	spec *ignore.GitIgnore
}

func walkDir(root string) ([]string, error) {
	var files []string
	var matchers []matcher // ordered root-first, so deepest entries sit last

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Drop matchers belonging to directories we have already left.
		keep := matchers[:0]
		for _, m := range matchers {
			if within(m.dir, path) {
				keep = append(keep, m)
			}
		}
		matchers = keep

		if d.IsDir() {
			if path != root && ignored(path, matchers) {
				return filepath.SkipDir
			}
			if spec, err := ignore.CompileIgnoreFile(filepath.Join(path, IgnoreFileName)); err == nil {
				matchers = append(matchers, matcher{dir: path, spec: spec})
			}
			return nil
		}

		if IsWAV(path) && !ignored(path, matchers) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

// ignored consults the matchers from the deepest directory outwards; the
// first ignore file with a matching pattern decides, negations included.
func ignored(path string, matchers []matcher) bool {
	for i := len(matchers) - 1; i >= 0; i-- {
		rel, err := filepath.Rel(matchers[i].dir, path)
		if err != nil {
			continue
		}
		if matches, pattern := matchers[i].spec.MatchesPathHow(rel); pattern != nil {
			return matches
		}
	}
	return false
}

// within reports whether path sits at or below dir.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
