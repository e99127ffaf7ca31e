package grover

// ApplyDiffuser applies Grover's diffusion operator in place: compute
// the complex arithmetic mean m of all amplitudes, then set
// amplitude_i ← 2·m − amplitude_i for every i. On a register built from
// the uniform superposition this equals the unitary D = 2|s⟩⟨s| − I.
//
// No separate normalization is performed: the norm invariant rests
// entirely on this exact formula paired with the oracle's pure sign
// flip.
//
// Complexity: O(N), two passes.
func (v *StateVector) ApplyDiffuser() {
	var sum complex128
	for _, a := range v.amps {
		sum += a
	}
	mean := sum / complex(float64(len(v.amps)), 0)

	twice := 2 * mean
	for i := range v.amps {
		v.amps[i] = twice - v.amps[i]
	}
}
