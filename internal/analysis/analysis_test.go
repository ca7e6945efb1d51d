package analysis

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/bytelens/internal/scheme"
)

func TestHistogram(t *testing.T) {
	h := Histogram([]byte{1, 1, 2, 255})
	if h[1] != 2 || h[2] != 1 || h[255] != 1 || h[0] != 0 {
		t.Errorf("unexpected histogram: %v %v %v %v", h[0], h[1], h[2], h[255])
	}
}

func TestEntropy(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want float64
	}{
		{"empty", nil, 0},
		{"constant", make([]byte, 1000), 0},
		{"two symbols", []byte{0, 1, 0, 1}, 1},
		{"uniform", allBytes(), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Entropy(tt.data); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Entropy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntropyProfile(t *testing.T) {
	data := append(make([]byte, 256), allBytes()...)
	data = append(data, 7)

	p := EntropyProfile(data, 256)
	if len(p) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(p))
	}
	if p[0] != 0 || math.Abs(p[1]-8) > 1e-9 || p[2] != 0 {
		t.Errorf("unexpected profile %v", p)
	}
	if EntropyProfile(data, 0) != nil {
		t.Error("expected nil for zero block size")
	}
}

func TestClassCounts(t *testing.T) {
	c := ClassCounts([]byte{0x00, 'A', 'b', ' ', 0x7f, 0x80, 0xff})
	want := [scheme.NumClasses]int{1, 2, 1, 1, 2}
	if c != want {
		t.Errorf("ClassCounts = %v, want %v", c, want)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]byte{5, 5, 5, 9})
	if s.Size != 4 || s.Distinct != 2 || s.MostCommon != 5 {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestDetectPeriod(t *testing.T) {
	for _, period := range []int{16, 37, 200} {
		r := rand.New(rand.NewSource(int64(period)))
		pattern := make([]byte, period)
		r.Read(pattern)

		data := make([]byte, 0, 8192)
		for len(data) < 8192 {
			data = append(data, pattern...)
		}

		if got := DetectPeriod(data, PeriodOptions{}); got != period {
			t.Errorf("DetectPeriod() = %d, want %d", got, period)
		}
	}
}

func TestDetectPeriod_NoPeriod(t *testing.T) {
	if got := DetectPeriod(make([]byte, 4096), PeriodOptions{}); got != 0 {
		t.Errorf("constant data: DetectPeriod() = %d, want 0", got)
	}
	if got := DetectPeriod([]byte{1, 2}, PeriodOptions{}); got != 0 {
		t.Errorf("tiny data: DetectPeriod() = %d, want 0", got)
	}

	r := rand.New(rand.NewSource(1))
	noise := make([]byte, 1<<14)
	r.Read(noise)
	if got := DetectPeriod(noise, PeriodOptions{MaxPeriod: 512}); got != 0 {
		t.Errorf("noise: DetectPeriod() = %d, want 0", got)
	}
}

func TestAutocorrelation_ZeroLagIsVariance(t *testing.T) {
	data := []byte{0, 2, 0, 2}
	ac := Autocorrelation(data)
	// mean 1, deviations ±1, sum of squares 4
	if math.Abs(ac[0]-4) > 1e-9 {
		t.Errorf("ac[0] = %v, want 4", ac[0])
	}
	if math.Abs(ac[1]+3) > 1e-9 {
		t.Errorf("ac[1] = %v, want -3", ac[1])
	}
}

func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
