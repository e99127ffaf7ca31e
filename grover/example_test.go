package grover_test

import (
	"fmt"

	"github.com/katalvlaran/qamp/grover"
)

////////////////////////////////////////////////////////////////////////////////
// Simulator Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleSimulator_Run searches an 8-item space for index 2 with the
// optimal two iterations and reports the measured index with its
// probability.
func ExampleSimulator_Run() {
	space, _ := grover.NewSearchSpace(3)
	pred, _ := grover.MarkedOracle(2, space.Size)
	sim, _ := grover.NewSimulator(space, pred)

	idx, _ := sim.Run(2)
	fmt.Println(idx)
	fmt.Printf("%.4f\n", sim.Probabilities()[idx])
	// Output:
	// 2
	// 0.9453
}

// ExampleSimulator_RunOptimal lets the simulator pick ⌊π/4·√N⌋ itself.
// For a 2-qubit register one iteration amplifies the marked state to
// certainty.
func ExampleSimulator_RunOptimal() {
	space, _ := grover.NewSearchSpace(2)
	pred, _ := grover.MarkedOracle(3, space.Size)
	sim, _ := grover.NewSimulator(space, pred)

	idx, _ := sim.RunOptimal()
	fmt.Println(idx, sim.OptimalIterations())
	fmt.Printf("%.4f\n", sim.Probabilities()[idx])
	// Output:
	// 3 1
	// 1.0000
}

// ExampleRunBatch searches every basis state of a 2-qubit register
// concurrently, each run owning its own state vector.
func ExampleRunBatch() {
	space, _ := grover.NewSearchSpace(2)
	preds := make([]grover.Predicate, space.Size)
	for i := range preds {
		preds[i], _ = grover.MarkedOracle(i, space.Size)
	}

	results, _ := grover.RunBatch(space, preds, -1, 2)
	for _, res := range results {
		fmt.Println(res.Index)
	}
	// Output:
	// 0
	// 1
	// 2
	// 3
}

// ExamplePredicate shows a custom marking strategy: any pure function of
// the basis-state index can serve as the oracle.
func ExamplePredicate() {
	space, _ := grover.NewSearchSpace(3)
	// Mark the single state whose low two bits are 01 and bit 2 is set: |101⟩ = 5.
	pred := grover.Predicate(func(i int) bool { return i == 5 })
	sim, _ := grover.NewSimulator(space, pred)

	idx, _ := sim.RunOptimal()
	fmt.Println(idx)
	// Output:
	// 5
}
