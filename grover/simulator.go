package grover

import "math"

// Simulator drives one Grover search: it owns a single StateVector from
// construction until the Simulator is discarded, and its run loop is the
// sole mutator of that vector after initialization. One Simulator serves
// one run; concurrent searches must each construct their own.
type Simulator struct {
	space SearchSpace
	pred  Predicate
	state *StateVector
}

// NewSimulator builds a Simulator over space with the given oracle
// predicate, initializing the owned StateVector to the uniform
// superposition. Fails fast with ErrNilPredicate when pred is nil — the
// predicate is validated at construction, not at first use. A space not
// built via NewSearchSpace (Size < 2) yields ErrQubitCount.
//
// Complexity: O(N).
func NewSimulator(space SearchSpace, pred Predicate) (*Simulator, error) {
	if space.Qubits <= 0 || space.Size < 2 {
		return nil, ErrQubitCount
	}
	if pred == nil {
		return nil, ErrNilPredicate
	}

	return &Simulator{
		space: space,
		pred:  pred,
		state: NewUniformState(space),
	}, nil
}

// Space returns the immutable search-space description.
func (s *Simulator) Space() SearchSpace { return s.space }

// OptimalIterations returns ⌊π/4·√N⌋ for the space, the iteration count
// maximizing the marked-state probability for a single marked item.
//
// Complexity: O(1).
func OptimalIterations(space SearchSpace) int {
	return int(math.Floor(math.Pi / 4 * math.Sqrt(float64(space.Size))))
}

// OptimalIterations returns ⌊π/4·√N⌋ for the simulator's own space.
func (s *Simulator) OptimalIterations() int {
	return OptimalIterations(s.space)
}

// Run executes the amplification loop: iterations repetitions of
// ApplyOracle followed by ApplyDiffuser on the owned vector, strictly in
// that order and never interleaved, then returns the measured index
// (deterministic argmax).
//
// iterations == 0 is valid and measures the untouched uniform
// distribution. iterations < 0 returns ErrNegativeIterations before any
// amplitude is modified.
//
// Complexity: O(iterations·N).
func (s *Simulator) Run(iterations int) (int, error) {
	if iterations < 0 {
		return 0, ErrNegativeIterations
	}

	for i := 0; i < iterations; i++ {
		s.state.ApplyOracle(s.pred)
		s.state.ApplyDiffuser()
	}

	return s.state.Measure(), nil
}

// RunOptimal runs the loop for OptimalIterations repetitions and returns
// the measured index.
func (s *Simulator) RunOptimal() (int, error) {
	return s.Run(s.OptimalIterations())
}

// Probabilities returns a read-only snapshot of the current measurement
// distribution (length N, sums to 1 within NormTolerance). Calling it
// does not advance the simulation; two calls without an intervening Run
// return identical values.
func (s *Simulator) Probabilities() []float64 {
	return s.state.Probabilities()
}
