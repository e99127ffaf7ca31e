package grover

import "errors"

// Sentinel errors for grover operations. All constructor and run-time
// validation happens before any amplitude is touched, so a failed call
// never leaves a StateVector partially mutated.
var (
	// ErrQubitCount indicates a non-positive qubit count.
	ErrQubitCount = errors.New("grover: qubit count must be a positive integer")
	// ErrNilPredicate indicates a Simulator was constructed without an oracle predicate.
	ErrNilPredicate = errors.New("grover: oracle predicate must be non-nil")
	// ErrNegativeIterations indicates Run was asked for a negative iteration count.
	ErrNegativeIterations = errors.New("grover: iteration count must be non-negative")
	// ErrMarkedIndexRange indicates a marked index outside the search space.
	ErrMarkedIndexRange = errors.New("grover: marked index out of range")
	// ErrNoPredicates indicates RunBatch was called with an empty predicate list.
	ErrNoPredicates = errors.New("grover: batch requires at least one predicate")
)
