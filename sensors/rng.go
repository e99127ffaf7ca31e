// Package sensors - RNG policy shared by all sensor models.
//
// Goals:
//   - Determinism: same seed ⇒ identical noise stream across platforms.
//   - Encapsulation: a single factory; no time-based sources hidden anywhere.
package sensors

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultRNGSeed uint64 = 1

// noiseSource builds a Gaussian noise distribution N(0, sigma) on a
// deterministic source. Policy: seed==0 ⇒ defaultRNGSeed; otherwise the
// provided seed verbatim.
func noiseSource(sigma float64, seed uint64) distuv.Normal {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return distuv.Normal{
		Mu:    0,
		Sigma: sigma,
		Src:   rand.NewSource(seed),
	}
}
