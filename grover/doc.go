// Package grover implements a deterministic, classical simulation of
// Grover's amplitude-amplification search over an explicit in-memory
// state vector.
//
// What:
//
//   - SearchSpace fixes the state-space size N = 2ⁿ from a qubit count n.
//   - StateVector holds N complex amplitudes, initialized to the uniform
//     superposition 1/√N and mutated in place by the two operators.
//   - ApplyOracle negates the amplitudes of indices marked by a
//     caller-supplied Predicate.
//   - ApplyDiffuser reflects every amplitude about the complex mean
//     (the inversion-about-mean operator, D = 2|s⟩⟨s| − I on the
//     uniform superposition).
//   - Simulator owns one StateVector and drives the Oracle→Diffuser loop
//     for a requested or optimal (⌊π/4·√N⌋) number of iterations.
//   - Measure reports the deterministic argmax of the probability
//     distribution |aᵢ|², lowest index winning ties.
//
// Why:
//
//   - Unsorted search: Grover locates a marked item with O(√N) oracle
//     applications against O(N) classically.
//   - Teaching and prototyping: the flat-vector model exposes amplitude
//     evolution step by step without circuit machinery.
//
// Complexity:
//
//   - Each iteration: O(N) time (one oracle sweep + one diffusion sweep).
//   - Whole run: O(k·N) time, O(N) memory — exponential in qubit count,
//     so practical n is in the tens, not hundreds.
//
// Errors:
//
//   - ErrQubitCount: qubit count ≤ 0.
//   - ErrNilPredicate: Simulator constructed without an oracle predicate.
//   - ErrNegativeIterations: Run called with iterations < 0.
//   - ErrMarkedIndexRange: MarkedOracle index outside [0, size).
//
// The simulation is a linear-algebra model of amplitude evolution, not a
// circuit simulator: no decoherence, no measurement collapse, no gate
// decomposition. Measurement is a deterministic argmax by design, never a
// stochastic draw.
package grover
