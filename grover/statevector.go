package grover

import "math"

// StateVector is the mutable register of one Grover run: an ordered
// sequence of complex amplitudes, index i corresponding to computational
// basis state |i⟩. A StateVector is owned by exactly one Simulator for
// the duration of a run; only ApplyOracle and ApplyDiffuser mutate it.
type StateVector struct {
	amps []complex128
}

// NewUniformState builds the uniform superposition over space: every
// amplitude set to the real value 1/√N, giving each basis state equal
// measurement probability 1/N.
//
// Complexity: O(N) time and memory.
func NewUniformState(space SearchSpace) *StateVector {
	amps := make([]complex128, space.Size)
	amp := complex(1/math.Sqrt(float64(space.Size)), 0)
	for i := range amps {
		amps[i] = amp
	}

	return &StateVector{amps: amps}
}

// Len reports the number of basis states N.
func (v *StateVector) Len() int { return len(v.amps) }

// Amplitude returns the complex amplitude of basis state i.
func (v *StateVector) Amplitude(i int) complex128 { return v.amps[i] }

// Clone returns an independent deep copy of the vector. Concurrent runs
// must each own their own StateVector; Clone is the supported way to
// fork one.
//
// Complexity: O(N).
func (v *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(v.amps))
	copy(amps, v.amps)

	return &StateVector{amps: amps}
}

// Probabilities derives the measurement distribution on demand:
// probability_i = |amplitude_i|². The result is a fresh snapshot — it
// sums to 1 within NormTolerance and is never aliased to internal state,
// so repeated calls without an intervening transform return identical
// values.
//
// Complexity: O(N).
func (v *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(v.amps))
	for i, a := range v.amps {
		re, im := real(a), imag(a)
		probs[i] = re*re + im*im
	}

	return probs
}

// Measure reports the index of the most probable basis state — a
// deterministic argmax over Probabilities, ties broken by the lowest
// index. A physical measurement would sample the distribution instead;
// the argmax is the specified behavior of this simulator.
//
// Complexity: O(N).
func (v *StateVector) Measure() int {
	best, bestProb := 0, 0.0
	for i, a := range v.amps {
		re, im := real(a), imag(a)
		if p := re*re + im*im; p > bestProb {
			best, bestProb = i, p
		}
	}

	return best
}

// Norm returns the sum of squared amplitude magnitudes. Equals 1 within
// NormTolerance after construction and after every full oracle+diffuser
// pair.
//
// Complexity: O(N).
func (v *StateVector) Norm() float64 {
	var sum float64
	for _, a := range v.amps {
		re, im := real(a), imag(a)
		sum += re*re + im*im
	}

	return sum
}
