package validation

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

// normalScores returns deterministic standard normal quantiles at evenly
// spaced probabilities, a sample that any normality test should accept.
func normalScores(n int) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		p := (float64(i) + 0.5) / float64(n)
		scores[i] = dist.Quantile(p)
	}
	return scores
}

// exponentialScores returns quantiles of a heavily right-skewed
// distribution, a sample normality tests should reject.
func exponentialScores(n int) []float64 {
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		p := (float64(i) + 0.5) / float64(n)
		scores[i] = -math.Log(1 - p)
	}
	return scores
}

func TestSkewnessSymmetric(t *testing.T) {
	data := normalScores(40)
	mean, _ := stats.Mean(data)
	stdDev, _ := stats.StandardDeviation(data)

	assert.InDelta(t, 0.0, Skewness(data, mean, stdDev), 1e-9)
}

func TestSkewnessRightTail(t *testing.T) {
	data := exponentialScores(40)
	mean, _ := stats.Mean(data)
	stdDev, _ := stats.StandardDeviation(data)

	assert.Greater(t, Skewness(data, mean, stdDev), 0.5)
}

func TestSkewnessGuards(t *testing.T) {
	assert.Equal(t, 0.0, Skewness([]float64{1, 2}, 1.5, 0.5))
	assert.Equal(t, 0.0, Skewness([]float64{1, 1, 1, 1}, 1, 0))
}

func TestKurtosisGuards(t *testing.T) {
	assert.Equal(t, 3.0, Kurtosis([]float64{1, 2, 3}, 2, 0.8))
	assert.Equal(t, 3.0, Kurtosis([]float64{1, 1, 1, 1}, 1, 0))
}

func TestNormalityTinySample(t *testing.T) {
	isNormal, p := TestNormality([]float64{1, 2})
	assert.False(t, isNormal)
	assert.Equal(t, 1.0, p)
}

func TestNormalityConstantSample(t *testing.T) {
	data := make([]float64, 20)
	for i := range data {
		data[i] = 7
	}

	isNormal, p := TestNormality(data)
	assert.False(t, isNormal)
	assert.Equal(t, 1.0, p)
}

func TestNormalityAcceptsNormalScores(t *testing.T) {
	isNormal, p := TestNormality(normalScores(40))
	assert.True(t, isNormal)
	assert.Greater(t, p, 0.05)
}

func TestNormalityRejectsExponentialScores(t *testing.T) {
	isNormal, p := TestNormality(exponentialScores(40))
	assert.False(t, isNormal)
	assert.Less(t, p, 0.05)
}

func TestNormalitySmallSampleFallback(t *testing.T) {
	// Under 8 points the approximation runs instead of D'Agostino K^2.
	isNormal, p := TestNormality([]float64{1, 2, 3, 4, 5})
	assert.True(t, isNormal)
	require.Greater(t, p, 0.05)
	assert.LessOrEqual(t, p, 1.0)
}
