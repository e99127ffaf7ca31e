package grover

// ApplyOracle applies the marking operator U_ω in place: for every basis
// state i with pred(i) true, amplitude_i ← −amplitude_i; all other
// amplitudes are untouched. The predicate is evaluated exactly once per
// index; evaluation order is unspecified.
//
// Edge cases: a predicate marking nothing leaves the vector unchanged; a
// predicate marking everything negates every amplitude uniformly, which
// the diffuser still handles correctly since it is the general
// reflection about the mean.
//
// The sign flip preserves |amplitude_i| for every i, so the norm
// invariant holds exactly.
//
// Complexity: O(N).
func (v *StateVector) ApplyOracle(pred Predicate) {
	for i := range v.amps {
		if pred(i) {
			v.amps[i] = -v.amps[i]
		}
	}
}
