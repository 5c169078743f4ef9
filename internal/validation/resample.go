package validation

import (
	"context"
	"math"
	"math/rand"
	"runtime"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"astrogen/domain/core"
)

// coefficientFn recomputes the correlation statistic on a resampled pair of
// vectors. NaN results (degenerate resamples) are discarded by the callers.
type coefficientFn func(x, y []float64) (float64, error)

// BootstrapCI resamples pairs with replacement and returns the [2.5, 97.5]
// percentile interval of the recomputed coefficients. Iterations are split
// into per-worker index ranges; each worker accumulates its own slice with
// its own seeded source, merged by concatenation at the join barrier.
func BootstrapCI(ctx context.Context, x, y []float64, iterations, workers int, seed int64, coef coefficientFn) (low, high float64, err error) {
	if len(x) != len(y) || len(x) == 0 {
		return 0, 0, core.NewInvalidInputError("vectors", "length mismatch")
	}
	coefs, err := resample(ctx, iterations, workers, seed, func(rng *rand.Rand) (float64, bool) {
		n := len(x)
		bx := make([]float64, n)
		by := make([]float64, n)
		for i := 0; i < n; i++ {
			// Pairs stay matched; only the index is resampled.
			j := rng.Intn(n)
			bx[i] = x[j]
			by[i] = y[j]
		}
		r, cerr := coef(bx, by)
		if cerr != nil || math.IsNaN(r) {
			return 0, false
		}
		return r, true
	})
	if err != nil {
		return 0, 0, err
	}
	if len(coefs) == 0 {
		return -1, 1, nil
	}

	low, err = stats.Percentile(coefs, 2.5)
	if err != nil {
		return 0, 0, err
	}
	high, err = stats.Percentile(coefs, 97.5)
	if err != nil {
		return 0, 0, err
	}
	return low, high, nil
}

// PermutationPValue shuffles one vector independently of the other and
// returns the two-sided p-value with a +1 continuity correction on both
// numerator and denominator, so the minimum achievable p is 1/(P+1).
func PermutationPValue(ctx context.Context, x, y []float64, observed float64, iterations, workers int, seed int64, coef coefficientFn) (float64, error) {
	if len(x) != len(y) || len(x) == 0 {
		return 0, core.NewInvalidInputError("vectors", "length mismatch")
	}
	coefs, err := resample(ctx, iterations, workers, seed, func(rng *rand.Rand) (float64, bool) {
		shuffled := make([]float64, len(x))
		copy(shuffled, x)
		for j := len(shuffled) - 1; j > 0; j-- {
			k := rng.Intn(j + 1)
			shuffled[j], shuffled[k] = shuffled[k], shuffled[j]
		}
		r, cerr := coef(shuffled, y)
		if cerr != nil || math.IsNaN(r) {
			return 0, false
		}
		return r, true
	})
	if err != nil {
		return 0, err
	}

	extreme := 0
	for _, r := range coefs {
		if math.Abs(r) >= math.Abs(observed) {
			extreme++
		}
	}
	return float64(extreme+1) / float64(iterations+1), nil
}

// resample distributes iterations across a worker pool. Each worker owns a
// deterministic rand source derived from the run seed and its index, so
// results are reproducible for a fixed (seed, workers) pair.
func resample(ctx context.Context, iterations, workers int, seed int64, draw func(*rand.Rand) (float64, bool)) ([]float64, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > iterations {
		workers = iterations
	}

	results := make([][]float64, workers)
	g, ctx := errgroup.WithContext(ctx)

	per := iterations / workers
	extra := iterations % workers
	for w := 0; w < workers; w++ {
		w := w
		count := per
		if w < extra {
			count++
		}
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(w)*7919))
			out := make([]float64, 0, count)
			for i := 0; i < count; i++ {
				if i%256 == 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
				}
				if r, ok := draw(rng); ok {
					out = append(out, r)
				}
			}
			results[w] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]float64, 0, iterations)
	for _, part := range results {
		merged = append(merged, part...)
	}
	return merged, nil
}
