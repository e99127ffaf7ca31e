// Package grover - core value types shared by the simulator components.
package grover

// NormTolerance is the absolute tolerance used when checking that the
// squared amplitudes of a StateVector sum to 1. The oracle (pure sign
// flip) and the diffuser (reflection about the mean) both preserve the
// norm exactly in real arithmetic; floating error keeps the drift well
// below this bound for any practical qubit count.
const NormTolerance = 1e-9

// Predicate marks basis states for the oracle: it reports whether the
// computational basis state with the given index is a search target.
//
// Contract (not validated at run time): a Predicate must be pure and
// deterministic — same index, same answer, no side effects — because the
// oracle may evaluate indices in any order and evaluates each index once
// per application.
type Predicate func(index int) bool

// SearchSpace fixes the dimensions of one Grover search: Qubits binary
// degrees of freedom spanning Size = 2^Qubits basis states. Immutable
// once constructed; build via NewSearchSpace.
type SearchSpace struct {
	// Qubits is the qubit count n, always ≥ 1.
	Qubits int
	// Size is the state-space size N = 2^n, always a power of two ≥ 2.
	Size int
}

// NewSearchSpace validates the qubit count and derives the state-space
// size. Returns ErrQubitCount when qubits ≤ 0.
//
// Complexity: O(1).
func NewSearchSpace(qubits int) (SearchSpace, error) {
	if qubits <= 0 {
		return SearchSpace{}, ErrQubitCount
	}

	return SearchSpace{
		Qubits: qubits,
		Size:   1 << qubits,
	}, nil
}

// MarkedOracle builds the canonical single-target Predicate: it marks
// exactly the basis state at index within a space of size states.
// Returns ErrMarkedIndexRange when index ∉ [0, size).
//
// Complexity: O(1) per evaluation.
func MarkedOracle(index, size int) (Predicate, error) {
	if index < 0 || index >= size {
		return nil, ErrMarkedIndexRange
	}

	return func(current int) bool {
		return current == index
	}, nil
}
