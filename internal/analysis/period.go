package analysis

import (
	"github.com/mjibson/go-dsp/fft"
)

const (
	DefaultMinPeriod  = 2
	DefaultMaxPeriod  = 4096
	DefaultSampleSize = 1 << 18

	// minCorrelation is the normalized autocorrelation a lag needs to count as periodic.
	minCorrelation = 0.2
)

// PeriodOptions bounds the search. Zero values pick the defaults.
type PeriodOptions struct {
	MinPeriod  int
	MaxPeriod  int
	SampleSize int
}

func (o PeriodOptions) withDefaults() PeriodOptions {
	if o.MinPeriod < 1 {
		o.MinPeriod = DefaultMinPeriod
	}
	if o.MaxPeriod < 1 {
		o.MaxPeriod = DefaultMaxPeriod
	}
	if o.SampleSize < 1 {
		o.SampleSize = DefaultSampleSize
	}
	return o
}

// Autocorrelation returns the biased autocorrelation of the mean-removed bytes for
// lags [0, len(data)). Zero padding keeps it linear rather than circular.
func Autocorrelation(data []byte) []float64 {
	n := len(data)
	if n == 0 {
		return nil
	}

	mean := 0.0
	for _, b := range data {
		mean += float64(b)
	}
	mean /= float64(n)

	size := 1
	for size < 2*n {
		size <<= 1
	}
	x := make([]float64, size)
	for i, b := range data {
		x[i] = float64(b) - mean
	}

	power := fft.FFTReal(x)
	for i, c := range power {
		re, im := real(c), imag(c)
		power[i] = complex(re*re+im*im, 0)
	}
	ac := fft.IFFT(power)

	out := make([]float64, n)
	for i := range out {
		out[i] = real(ac[i])
	}
	return out
}

// DetectPeriod returns the lag with the strongest autocorrelation in
// [MinPeriod, MaxPeriod], or 0 when the data shows no clear period.
func DetectPeriod(data []byte, opts PeriodOptions) int {
	opts = opts.withDefaults()
	sample := data
	if len(sample) > opts.SampleSize {
		sample = sample[:opts.SampleSize]
	}

	maxLag := opts.MaxPeriod
	if maxLag > len(sample)/2 {
		maxLag = len(sample) / 2
	}
	if maxLag < opts.MinPeriod {
		return 0
	}

	ac := Autocorrelation(sample)
	if len(ac) == 0 || ac[0] <= 0 {
		return 0
	}

	best, bestVal := 0, 0.0
	for lag := opts.MinPeriod; lag <= maxLag; lag++ {
		if ac[lag] > bestVal {
			best, bestVal = lag, ac[lag]
		}
	}
	if bestVal/ac[0] < minCorrelation {
		return 0
	}
	return best
}
