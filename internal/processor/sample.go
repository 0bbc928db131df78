// Package processor implements silence detection, trailing-silence trimming
// and segmentation over decoded PCM sample buffers.
package processor

import (
	"fmt"
	"math"
)

// Sample constrains the integer types the kernel operates on. WAV decoding
// hands us int samples regardless of container depth, but none of the
// algorithms depend on the storage width, so narrower types work too.
// Floating-point formats are rejected at the decode boundary and never
// reach this package.
type Sample interface {
	~int | ~int16 | ~int32 | ~int64
}

// SupportedBitDepth reports whether the pipeline can process integer
// samples of the given container bit depth.
func SupportedBitDepth(bits int) bool {
	switch bits {
	case 16, 24, 32:
		return true
	}
	return false
}

// MaxMagnitude returns the largest positive value an N-bit signed integer
// sample can hold: 2^(N-1) - 1. For 24-bit audio that is 8388607, even
// though the samples travel in a wider native integer.
func MaxMagnitude(bits int) (int64, error) {
	if !SupportedBitDepth(bits) {
		return 0, fmt.Errorf("unsupported bit depth: %d", bits)
	}
	return 1<<(bits-1) - 1, nil
}

// DBToAmplitude converts a decibel value to a normalised linear amplitude:
// 0 dB is full scale (1.0), -60 dB is a thousandth of full scale.
func DBToAmplitude(db float64) float64 {
	return math.Pow(10, db/20.0)
}

// DeviationThreshold converts a decibel floor into the absolute sample
// value that separates silence from sound at the given bit depth.
// A sample s counts as silent iff -threshold <= s <= threshold.
func DeviationThreshold(db float64, bits int) (int64, error) {
	max, err := MaxMagnitude(bits)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(DBToAmplitude(db) * float64(max))), nil
}

// isSilent reports whether s lies within the symmetric threshold band.
func isSilent[S Sample](s, threshold S) bool {
	return s >= -threshold && s <= threshold
}

// magnitude returns |s| widened to int64 so peak tracking works for every
// sample type.
func magnitude[S Sample](s S) int64 {
	v := int64(s)
	if v < 0 {
		v = -v
	}
	return v
}
