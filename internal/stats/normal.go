// Package stats provides the numeric helpers behind the chart overlays:
// the normal reference curve for the walk-endpoint distribution and
// empirical moments of a generated frame.
package stats

import (
	"math"

	"github.com/san-kum/walklab/internal/walk"
)

// NormalPDF evaluates the density of N(mean, sigma²) at x.
func NormalPDF(x, mean, sigma float64) float64 {
	if sigma <= 0 {
		return 0
	}
	z := (x - mean) / sigma
	return math.Exp(-0.5*z*z) / (sigma * math.Sqrt(2*math.Pi))
}

// ExpectedCounts returns the normal approximation of the endpoint
// distribution evaluated at each bucket label and scaled to counts. A
// walk of Steps ±1 steps has mean 0 and variance Steps; adjacent labels
// are 2 apart, so each carries twice the density.
func ExpectedCounts(cfg walk.Config) []float64 {
	sigma := math.Sqrt(float64(cfg.Steps))
	labels := walk.Labels(cfg.Steps)
	expected := make([]float64, len(labels))
	for i, l := range labels {
		expected[i] = float64(cfg.Samples) * 2 * NormalPDF(float64(l), 0, sigma)
	}
	return expected
}

// Moments returns the count-weighted mean and standard deviation of a
// frame's bucket labels. An empty or all-zero frame reports 0, 0.
func Moments(f walk.Frame) (mean, stddev float64) {
	total := f.Total()
	if total == 0 {
		return 0, 0
	}
	for _, b := range f {
		mean += float64(b.Label) * float64(b.Count)
	}
	mean /= float64(total)

	var variance float64
	for _, b := range f {
		d := float64(b.Label) - mean
		variance += d * d * float64(b.Count)
	}
	variance /= float64(total)
	return mean, math.Sqrt(variance)
}
