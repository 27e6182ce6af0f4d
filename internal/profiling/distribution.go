package profiling

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ConfidenceLevel of the interval reported around the mean
const ConfidenceLevel = 0.95

// summarize computes the numeric summary of a non-empty sample
func summarize(data []float64) *NumericSummary {
	s := &NumericSummary{}

	mean, stdDev := stat.MeanStdDev(data, nil)
	if math.IsNaN(stdDev) {
		stdDev = 0
	}
	s.Mean = mean
	s.StdDev = stdDev

	// Errors only arise on empty input, which callers never pass
	s.Min, _ = stats.Min(data)
	s.Max, _ = stats.Max(data)
	s.Median, _ = stats.Median(data)
	s.Q25, _ = stats.Percentile(data, 25)
	s.Q75, _ = stats.Percentile(data, 75)

	s.Skewness = calculateSkewness(data, mean, stdDev)
	s.Outliers = detectOutliers(data, s.Q25, s.Q75)
	s.CILow, s.CIHigh = confidenceInterval(len(data), mean, stdDev)

	return s
}

// confidenceInterval uses Student's t with n-1 degrees of freedom. A single
// observation yields a zero-width interval.
func confidenceInterval(n int, mean, stdDev float64) (float64, float64) {
	if n < 2 || stdDev == 0 {
		return mean, mean
	}
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	half := t.Quantile(1-(1-ConfidenceLevel)/2) * stdDev / math.Sqrt(float64(n))
	return mean - half, mean + half
}

// calculateSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0
	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	skewness := sumCubedDeviations / n
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// detectOutliers counts values outside 1.5 IQR of the quartiles
func detectOutliers(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lowerBound := q25 - 1.5*iqr
	upperBound := q75 + 1.5*iqr

	outlierCount := 0
	for _, x := range data {
		if x < lowerBound || x > upperBound {
			outlierCount++
		}
	}
	return outlierCount
}
