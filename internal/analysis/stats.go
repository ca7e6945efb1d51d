package analysis

import (
	"math"

	"github.com/san-kum/bytelens/internal/scheme"
)

// Histogram counts occurrences of every byte value.
func Histogram(data []byte) [256]int {
	var h [256]int
	for _, b := range data {
		h[b]++
	}
	return h
}

// Entropy is the Shannon entropy of data in bits per byte, in [0, 8].
func Entropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	h := Histogram(data)
	n := float64(len(data))
	e := 0.0
	for _, c := range h {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		e -= p * math.Log2(p)
	}
	return e
}

// EntropyProfile splits data into blocks of blockSize and returns the entropy of each.
// The last block may be shorter.
func EntropyProfile(data []byte, blockSize int) []float64 {
	if blockSize <= 0 || len(data) == 0 {
		return nil
	}
	out := make([]float64, 0, (len(data)+blockSize-1)/blockSize)
	for start := 0; start < len(data); start += blockSize {
		end := start + blockSize
		if end > len(data) {
			end = len(data)
		}
		out = append(out, Entropy(data[start:end]))
	}
	return out
}

// ClassCounts counts bytes per category-scheme class.
func ClassCounts(data []byte) [scheme.NumClasses]int {
	var counts [scheme.NumClasses]int
	h := Histogram(data)
	for b, c := range h {
		counts[scheme.Classify(byte(b))] += c
	}
	return counts
}

// Summary gathers the headline numbers for a buffer.
type Summary struct {
	Size       int
	Entropy    float64
	Classes    [scheme.NumClasses]int
	Distinct   int
	MostCommon byte
}

func Summarize(data []byte) Summary {
	h := Histogram(data)
	s := Summary{
		Size:    len(data),
		Entropy: Entropy(data),
		Classes: ClassCounts(data),
	}
	best := -1
	for b, c := range h {
		if c > 0 {
			s.Distinct++
		}
		if c > best {
			best = c
			s.MostCommon = byte(b)
		}
	}
	return s
}
