package grover_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/qamp/grover"
)

// BenchmarkSimulatorRun measures a full optimal-length amplification
// loop, including construction of the uniform register, for growing
// qubit counts. Work per run is O(⌊π/4·√N⌋·N) with N = 2ⁿ.
func BenchmarkSimulatorRun(b *testing.B) {
	for _, qubits := range []int{8, 10, 12, 14} {
		space, err := grover.NewSearchSpace(qubits)
		if err != nil {
			b.Fatal(err)
		}
		pred, err := grover.MarkedOracle(space.Size/2, space.Size)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("qubits=%d", qubits), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sim, err := grover.NewSimulator(space, pred)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := sim.RunOptimal(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkApplyDiffuser isolates the inversion-about-mean sweep on a
// 2¹⁴-state register.
func BenchmarkApplyDiffuser(b *testing.B) {
	space, err := grover.NewSearchSpace(14)
	if err != nil {
		b.Fatal(err)
	}
	v := grover.NewUniformState(space)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.ApplyDiffuser()
	}
}
