package grover

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome of one search within a batch.
type BatchResult struct {
	// Index is the measured basis-state index for this predicate.
	Index int
	// Probability is the measured index's probability after the run.
	Probability float64
	// Iterations is the iteration count the run actually executed.
	Iterations int
}

// RunBatch executes one independent Grover search per predicate over the
// same search-space dimensions, at most parallelism searches at a time
// (parallelism ≤ 0 means GOMAXPROCS). Every search owns its own
// Simulator and StateVector — nothing is shared between goroutines — so
// the core stays single-threaded per run, as required.
//
// iterations < 0 selects OptimalIterations(space) for every search.
// Results are positionally aligned with preds.
//
// Returns ErrNoPredicates for an empty predicate list and
// ErrNilPredicate when any entry is nil; both are detected before any
// search starts.
//
// Complexity: O(len(preds)·k·N) work, O(parallelism·N) peak memory.
func RunBatch(space SearchSpace, preds []Predicate, iterations, parallelism int) ([]BatchResult, error) {
	if len(preds) == 0 {
		return nil, ErrNoPredicates
	}
	for _, pred := range preds {
		if pred == nil {
			return nil, ErrNilPredicate
		}
	}
	if iterations < 0 {
		iterations = OptimalIterations(space)
	}
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	results := make([]BatchResult, len(preds))
	var g errgroup.Group
	g.SetLimit(parallelism)
	for i, pred := range preds {
		i, pred := i, pred
		g.Go(func() error {
			sim, err := NewSimulator(space, pred)
			if err != nil {
				return err
			}
			idx, err := sim.Run(iterations)
			if err != nil {
				return err
			}
			results[i] = BatchResult{
				Index:       idx,
				Probability: sim.Probabilities()[idx],
				Iterations:  iterations,
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
