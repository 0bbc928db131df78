// Package config resolves the run configuration from built-in defaults,
// an optional YAML config file and command-line flags, in that order.
// The resolved Config is constructed once and never mutated afterwards.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
)

// Built-in defaults, applied before any file or flag overrides.
const (
	DefaultDeviationDB  = -60.0
	DefaultMinSilenceMs = 500.0
	DefaultMinSegmentMs = 500.0
	DefaultPostfix      = "_part"
)

// AutoCut holds the segmentation policy. A nil *AutoCut on Config disables
// segmentation entirely, reducing processing to the trailing-silence trim.
type AutoCut struct {
	MinSilenceMs   float64 // shortest interior silence worth cutting at
	MinSegmentMs   float64 // shortest segment worth keeping
	Postfix        string  // appended to segment file names before the sequence number
	Subdir         bool    // write segments into a subdirectory named after the input
	DeleteOriginal bool    // remove the input file once its segments are written
}

// Config is the resolved run configuration shared read-only by every file.
type Config struct {
	DeviationDB float64 // silence floor in dB relative to full scale
	Overwrite   bool    // write the trimmed file back to the input path
	DeleteEmpty bool    // remove inputs whose trimmed output would be empty
	AutoCut     *AutoCut
}

// Default returns the built-in configuration: -60 dB floor, no overwrite,
// no delete-empty, segmentation off.
func Default() Config {
	return Config{DeviationDB: DefaultDeviationDB}
}

// DefaultAutoCut returns the segmentation defaults used when auto-cut is
// enabled without further tuning.
func DefaultAutoCut() AutoCut {
	return AutoCut{
		MinSilenceMs: DefaultMinSilenceMs,
		MinSegmentMs: DefaultMinSegmentMs,
		Postfix:      DefaultPostfix,
	}
}

// File mirrors Config with optional fields so YAML keys that are absent
// leave the corresponding defaults untouched. The presence of an auto_cut
// section enables segmentation.
type File struct {
	DeviationDB *float64     `yaml:"deviation_db"`
	Overwrite   *bool        `yaml:"overwrite"`
	DeleteEmpty *bool        `yaml:"delete_empty"`
	AutoCut     *AutoCutFile `yaml:"auto_cut"`
}

// AutoCutFile is the YAML form of AutoCut.
type AutoCutFile struct {
	MinSilenceMs   *float64 `yaml:"min_silence_ms"`
	MinSegmentMs   *float64 `yaml:"min_segment_ms"`
	Postfix        *string  `yaml:"postfix"`
	Subdir         *bool    `yaml:"subdir"`
	DeleteOriginal *bool    `yaml:"delete_original"`
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &f, nil
}

// Apply overlays the file's set fields onto cfg.
func (f *File) Apply(cfg *Config) {
	if f.DeviationDB != nil {
		cfg.DeviationDB = *f.DeviationDB
	}
	if f.Overwrite != nil {
		cfg.Overwrite = *f.Overwrite
	}
	if f.DeleteEmpty != nil {
		cfg.DeleteEmpty = *f.DeleteEmpty
	}
	if f.AutoCut != nil {
		if cfg.AutoCut == nil {
			ac := DefaultAutoCut()
			cfg.AutoCut = &ac
		}
		if f.AutoCut.MinSilenceMs != nil {
			cfg.AutoCut.MinSilenceMs = *f.AutoCut.MinSilenceMs
		}
		if f.AutoCut.MinSegmentMs != nil {
			cfg.AutoCut.MinSegmentMs = *f.AutoCut.MinSegmentMs
		}
		if f.AutoCut.Postfix != nil {
			cfg.AutoCut.Postfix = *f.AutoCut.Postfix
		}
		if f.AutoCut.Subdir != nil {
			cfg.AutoCut.Subdir = *f.AutoCut.Subdir
		}
		if f.AutoCut.DeleteOriginal != nil {
			cfg.AutoCut.DeleteOriginal = *f.AutoCut.DeleteOriginal
		}
	}
}

// ParseDeviationDB parses a decibel floor given on the command line. An
// unparsable value falls back to the default floor with a non-nil error so
// the caller can warn instead of aborting; 0 dB is a legal, if drastic,
// floor and parses fine.
func ParseDeviationDB(s string) (float64, error) {
	db, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return DefaultDeviationDB, fmt.Errorf("invalid dB value %q, using default %g dB", s, DefaultDeviationDB)
	}
	return db, nil
}
