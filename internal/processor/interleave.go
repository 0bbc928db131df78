package processor

import "fmt"

// Deinterleave splits a flat interleaved sample stream into n channels.
// Flat index i belongs to channel i mod n, samples staying in ascending
// time order. n must be at least 1.
func Deinterleave[S Sample](samples []S, n int) ([][]S, error) {
	if n < 1 {
		return nil, fmt.Errorf("invalid channel count: %d", n)
	}

	channels := make([][]S, n)
	for c := range channels {
		channels[c] = make([]S, 0, len(samples)/n+1)
	}
	for i, s := range samples {
		channels[i%n] = append(channels[i%n], s)
	}
	return channels, nil
}

// Interleave is the exact inverse of Deinterleave: flat index i comes from
// channel i mod n at position i / n. Every channel must share one length.
// An empty channel set interleaves to an empty stream.
func Interleave[S Sample](channels [][]S) ([]S, error) {
	if len(channels) == 0 {
		return nil, nil
	}

	length := len(channels[0])
	for c, ch := range channels {
		if len(ch) != length {
			return nil, fmt.Errorf("channel %d has %d samples, want %d", c, len(ch), length)
		}
	}

	flat := make([]S, 0, length*len(channels))
	for i := 0; i < length; i++ {
		for _, ch := range channels {
			flat = append(flat, ch[i])
		}
	}
	return flat, nil
}
