package validation

import (
	"math"
	"sort"

	"astrogen/domain/core"
)

// PearsonCoefficient computes the Pearson product-moment correlation.
// Returns ErrUndefinedCorrelation when either vector has zero variance.
func PearsonCoefficient(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, core.NewInvalidInputError("vectors", "length mismatch")
	}
	if len(x) < 2 {
		return 0, core.NewInsufficientDataError("pearson", len(x), 2)
	}

	n := float64(len(x))
	sumX, sumY, sumXY, sumX2, sumY2 := 0.0, 0.0, 0.0, 0.0, 0.0
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return 0, core.NewInvalidInputError("vectors", "non-finite value")
		}
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	numerator := n*sumXY - sumX*sumY
	denominator := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denominator == 0 {
		return math.NaN(), core.ErrUndefinedCorrelation
	}
	return clampCoefficient(numerator / denominator), nil
}

// SpearmanCoefficient is Pearson over average-tie fractional ranks.
func SpearmanCoefficient(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, core.NewInvalidInputError("vectors", "length mismatch")
	}
	return PearsonCoefficient(Ranks(x), Ranks(y))
}

// Ranks assigns 1-based fractional ranks, averaging ties.
func Ranks(data []float64) []float64 {
	n := len(data)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return data[idx[a]] < data[idx[b]] })

	ranks := make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j+1 < n && data[idx[j+1]] == data[idx[i]] {
			j++
		}
		// Average rank across the tie run [i,j].
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

// Floating point accumulation can push r fractionally outside [-1,1].
func clampCoefficient(r float64) float64 {
	return math.Max(-1, math.Min(1, r))
}
