package services

import "math"

// Statistical primitives behind the insight rules. All edge cases
// resolve to numeric defaults so rule code never needs defensive
// wrapping: empty input, division by zero and non-finite values all
// read as "no signal".

// Mean returns the arithmetic mean, 0 for empty input
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev returns the population standard deviation, 0 for fewer than
// two samples
func StdDev(xs []float64) float64 {
	return StdDevWithMean(xs, Mean(xs))
}

// StdDevWithMean is StdDev with a precomputed mean
func StdDevWithMean(xs []float64, mean float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	sumSquares := 0.0
	for _, x := range xs {
		diff := x - mean
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(xs)))
}

// MonthOverMonth returns the percentage change from previous to
// current. Returns 0 when previous is zero or either input is
// non-finite.
func MonthOverMonth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	if math.IsNaN(current) || math.IsInf(current, 0) {
		return 0
	}
	if math.IsNaN(previous) || math.IsInf(previous, 0) {
		return 0
	}
	return ((current - previous) / previous) * 100
}

// IsOutlier reports whether value deviates from mean by strictly more
// than threshold standard deviations. A value exactly at the threshold
// is not an outlier, and a constant series (stdDev 0) has none.
func IsOutlier(value, mean, stdDev, threshold float64) bool {
	if stdDev == 0 {
		return false
	}
	return math.Abs(value-mean)/stdDev > threshold
}
