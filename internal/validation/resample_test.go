package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrogen/domain/core"
	"astrogen/internal/testkit"
)

func TestBootstrapCIPerfectPairs(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2, 4, 6, 8, 10, 12}

	low, high, err := BootstrapCI(context.Background(), x, y, 500, 4, 42, PearsonCoefficient)
	require.NoError(t, err)

	// Every resample of a perfectly linear pairing is perfectly linear,
	// except degenerate all-same-index draws, which are discarded.
	assert.Equal(t, 1.0, low)
	assert.Equal(t, 1.0, high)
}

func TestBootstrapCICoversObservedCoefficient(t *testing.T) {
	x, y := testkit.CorrelatedVectors(60, 0.6, 7)

	observed, err := PearsonCoefficient(x, y)
	require.NoError(t, err)

	low, high, err := BootstrapCI(context.Background(), x, y, 2000, 4, 42, PearsonCoefficient)
	require.NoError(t, err)

	assert.Less(t, low, high)
	assert.LessOrEqual(t, low, observed)
	assert.GreaterOrEqual(t, high, observed)
	assert.GreaterOrEqual(t, low, -1.0)
	assert.LessOrEqual(t, high, 1.0)
}

func TestBootstrapCIDeterministicForSeed(t *testing.T) {
	x, y := testkit.CorrelatedVectors(40, 0.5, 3)

	low1, high1, err := BootstrapCI(context.Background(), x, y, 1000, 4, 99, PearsonCoefficient)
	require.NoError(t, err)
	low2, high2, err := BootstrapCI(context.Background(), x, y, 1000, 4, 99, PearsonCoefficient)
	require.NoError(t, err)

	assert.Equal(t, low1, low2)
	assert.Equal(t, high1, high2)
}

func TestBootstrapCIInputValidation(t *testing.T) {
	_, _, err := BootstrapCI(context.Background(), []float64{1}, []float64{1, 2}, 10, 1, 1, PearsonCoefficient)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, _, err = BootstrapCI(context.Background(), nil, nil, 10, 1, 1, PearsonCoefficient)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestBootstrapCICancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	x, y := testkit.CorrelatedVectors(40, 0.5, 3)
	_, _, err := BootstrapCI(ctx, x, y, 10000, 2, 1, PearsonCoefficient)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPermutationPValueStrongSignal(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	y := []float64{2, 4, 6, 8, 10, 12, 14, 16}

	observed, err := PearsonCoefficient(x, y)
	require.NoError(t, err)

	p, err := PermutationPValue(context.Background(), x, y, observed, 999, 4, 42, PearsonCoefficient)
	require.NoError(t, err)

	// Continuity correction bounds p below by 1/(P+1).
	assert.GreaterOrEqual(t, p, 1.0/1000.0)
	assert.Less(t, p, 0.05)
}

func TestPermutationPValueNullSignal(t *testing.T) {
	// Shuffle-invariant null: y unrelated to x.
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	y := []float64{3, -1, 4, 1, -5, 9, 2, -6, 5, -3}

	observed, err := PearsonCoefficient(x, y)
	require.NoError(t, err)

	p, err := PermutationPValue(context.Background(), x, y, observed, 999, 4, 42, PearsonCoefficient)
	require.NoError(t, err)

	assert.Greater(t, p, 0.05)
	assert.LessOrEqual(t, p, 1.0)
}

func TestPermutationPValueArgumentOrderSymmetry(t *testing.T) {
	// Shuffling x against a fixed y samples the same null distribution as
	// shuffling y against a fixed x, so the two p-values agree up to
	// permutation noise.
	x, y := testkit.CorrelatedVectors(24, 0.3, 19)

	observed, err := PearsonCoefficient(x, y)
	require.NoError(t, err)

	pxy, err := PermutationPValue(context.Background(), x, y, observed, 4000, 4, 42, PearsonCoefficient)
	require.NoError(t, err)
	pyx, err := PermutationPValue(context.Background(), y, x, observed, 4000, 4, 42, PearsonCoefficient)
	require.NoError(t, err)

	assert.InDelta(t, pxy, pyx, 0.05)
}

func TestPermutationPValueDeterministicForSeed(t *testing.T) {
	x, y := testkit.CorrelatedVectors(30, 0.4, 11)
	observed, err := PearsonCoefficient(x, y)
	require.NoError(t, err)

	p1, err := PermutationPValue(context.Background(), x, y, observed, 1000, 4, 5, PearsonCoefficient)
	require.NoError(t, err)
	p2, err := PermutationPValue(context.Background(), x, y, observed, 1000, 4, 5, PearsonCoefficient)
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
}
