// Package analysis computes summary statistics over a byte buffer.
//
//   - [Histogram]: occurrences of every byte value
//   - [Entropy] and [EntropyProfile]: Shannon entropy in bits per byte
//   - [ClassCounts]: bytes per category-scheme class
//   - [DetectPeriod]: dominant record length, a good starting row width
//
// # Row Width Detection
//
// Fixed-size records show up as a peak in the autocorrelation of the byte
// values. DetectPeriod computes it through an FFT:
//
//	width := analysis.DetectPeriod(data, analysis.PeriodOptions{})
//	if width > 0 {
//	    settings.SetRowWidth(width)
//	}
package analysis
