package validation

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Skewness returns the adjusted Fisher-Pearson skewness coefficient.
func Skewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubed := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumCubed += d * d * d
	}

	skewness := sumCubed / n
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// Kurtosis returns bias-corrected total (non-excess) kurtosis.
func Kurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 3.0
	}

	n := float64(len(data))
	sumFourth := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumFourth += d * d * d * d
	}

	kurtosis := sumFourth / n
	if n > 3 {
		correction := (n - 1) / ((n - 2) * (n - 3))
		kurtosis = kurtosis*correction + 6/(n+1)
	}
	return kurtosis + 3
}

// TestNormality reports whether data is plausibly normal. D'Agostino's K^2
// test is used from n >= 8; smaller samples fall back to a conservative
// Jarque-Bera style approximation on skewness and kurtosis.
func TestNormality(data []float64) (isNormal bool, pValue float64) {
	if len(data) < 3 {
		return false, 1.0
	}
	if len(data) >= 8 {
		return dagostinoK2(data)
	}

	mean, _ := stats.Mean(data)
	stdDev, _ := stats.StandardDeviation(data)
	if stdDev == 0 {
		return false, 1.0
	}
	skewness := Skewness(data, mean, stdDev)
	excess := Kurtosis(data, mean, stdDev) - 3

	testStat := math.Abs(skewness) + math.Abs(excess)/2
	chi2 := distuv.ChiSquared{K: 2}
	pValue = 1 - chi2.CDF(testStat*testStat)
	return pValue > 0.05, pValue
}

func dagostinoK2(data []float64) (isNormal bool, pValue float64) {
	n := float64(len(data))

	mean, _ := stats.Mean(data)
	stdDev, _ := stats.StandardDeviation(data)
	if stdDev == 0 || math.IsNaN(stdDev) || math.IsInf(stdDev, 0) {
		return false, 1.0
	}

	g1 := Skewness(data, mean, stdDev)
	g2 := Kurtosis(data, mean, stdDev)

	// Skewness transform to Z1.
	y := g1 * math.Sqrt((n+1)*(n+3)/(6*(n-2)))
	beta2 := (3 * (n*n + 27*n - 70) * (n + 1) * (n + 3)) / ((n - 2) * (n + 5) * (n + 7) * (n + 9))
	w2 := -1 + math.Sqrt(2*(beta2-1))
	if w2 <= 0 {
		return false, 1.0
	}
	delta := 1 / math.Sqrt(math.Log(math.Sqrt(w2)))
	alpha := math.Sqrt(2 / (w2 - 1))
	ay := y / alpha
	z1 := delta * math.Log(ay+math.Sqrt(ay*ay+1))

	// Kurtosis transform to Z2 (Anscombe-Glynn).
	e := 3 * (n - 1) / (n + 1)
	v := 24 * n * (n - 2) * (n - 3) / ((n + 1) * (n + 1) * (n + 3) * (n + 5))
	if v <= 0 {
		return false, 1.0
	}
	x := (g2 - e) / math.Sqrt(v)

	sqrtBeta1 := 6 * (n*n - 5*n + 2) / ((n + 7) * (n + 9)) * math.Sqrt(6*(n+3)*(n+5)/(n*(n-2)*(n-3)))
	a := 6 + 8/sqrtBeta1*(2/sqrtBeta1+math.Sqrt(1+4/(sqrtBeta1*sqrtBeta1)))
	if a <= 4 {
		return false, 1.0
	}

	term := 1 - 2/(9*a)
	den := 1 + x*math.Sqrt(2/(a-4))
	if den <= 0 {
		return false, 0.0
	}
	z2 := (term - math.Pow((1-2/a)/den, 1.0/3.0)) / math.Sqrt(2/(9*a))

	k2 := z1*z1 + z2*z2
	chi2 := distuv.ChiSquared{K: 2}
	pValue = 1 - chi2.CDF(k2)
	return pValue > 0.05, pValue
}
