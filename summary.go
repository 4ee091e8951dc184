package cambium

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics derived from one metric series.
type Summary struct {
	Minimum float64
	Median  float64
	Mean    float64
	StdDev  float64
	Maximum float64
	Count   int
}

// Summarize computes descriptive statistics over a series of observations.
// The series must not be empty (the aggregator never creates empty series)
// and is sorted in place. A single observation has no defined sample
// standard deviation; it is reported as zero.
func Summarize(values []float64) Summary {
	sort.Float64s(values)

	summary := Summary{
		Minimum: floats.Min(values),
		Maximum: floats.Max(values),
		Median:  median(values),
		Mean:    stat.Mean(values, nil),
		Count:   len(values),
	}

	if len(values) > 1 {
		// Bessel-corrected (n-1 denominator).
		summary.StdDev = stat.StdDev(values, nil)
	}

	return summary
}

// median returns the middle element of a sorted series, or the average of
// the two middle elements for even lengths.
func median(sorted []float64) float64 {
	mid := len(sorted) / 2

	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}
