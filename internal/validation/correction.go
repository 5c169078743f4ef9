package validation

import (
	"math"
	"sort"

	"astrogen/domain/correlation"
)

// AdjustPValues applies the configured multiple-testing correction to a set
// of raw p-values gathered across methods, returning adjusted values in the
// same order. Adjusted values never fall below their raw inputs.
func AdjustPValues(raw []float64, method correlation.CorrectionMethod) []float64 {
	switch method {
	case correlation.CorrectionBonferroni:
		return bonferroni(raw)
	case correlation.CorrectionNone:
		adjusted := make([]float64, len(raw))
		copy(adjusted, raw)
		return adjusted
	default:
		return benjaminiHochberg(raw)
	}
}

func bonferroni(raw []float64) []float64 {
	m := float64(len(raw))
	adjusted := make([]float64, len(raw))
	for i, p := range raw {
		adjusted[i] = math.Min(1, p*m)
	}
	return adjusted
}

// benjaminiHochberg is the FDR step-up procedure. Working from the largest
// rank down, each adjusted value is min(p*m/rank, next larger adjusted),
// which keeps the adjusted sequence monotone in raw-p order.
func benjaminiHochberg(raw []float64) []float64 {
	m := len(raw)
	adjusted := make([]float64, m)
	if m == 0 {
		return adjusted
	}

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return raw[order[a]] < raw[order[b]] })

	running := 1.0
	for rank := m; rank >= 1; rank-- {
		idx := order[rank-1]
		candidate := raw[idx] * float64(m) / float64(rank)
		if candidate < running {
			running = candidate
		}
		adjusted[idx] = math.Min(1, running)
	}
	return adjusted
}
