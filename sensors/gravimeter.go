package sensors

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gravimeter models a gravity sensor with a Gaussian noise floor at its
// sensitivity. Not safe for concurrent use.
type Gravimeter struct {
	sensitivity float64
	noise       distuv.Normal
}

// NewGravimeter builds a gravimeter. sensitivity ≤ 0 selects
// DefaultGravimeterSensitivity; seed 0 selects the fixed default seed.
func NewGravimeter(sensitivity float64, seed uint64) *Gravimeter {
	if sensitivity <= 0 {
		sensitivity = DefaultGravimeterSensitivity
	}

	return &Gravimeter{
		sensitivity: sensitivity,
		noise:       noiseSource(sensitivity, seed),
	}
}

// Sensitivity reports the configured noise floor in m/s².
func (g *Gravimeter) Sensitivity() float64 { return g.sensitivity }

// MeasureGravity perturbs each sample with N(0, sensitivity) noise and
// summarizes the field against ReferenceGravity. Returns ErrNoSamples
// for empty input; the input slice is never modified.
//
// Complexity: O(n).
func (g *Gravimeter) MeasureGravity(samples []float64) (GravitySummary, error) {
	if len(samples) == 0 {
		return GravitySummary{}, ErrNoSamples
	}

	measured := make([]float64, len(samples))
	for i, s := range samples {
		measured[i] = s + g.noise.Rand()
	}
	mean := stat.Mean(measured, nil)

	return GravitySummary{
		Gravity:    mean,
		Anomaly:    mean - ReferenceGravity,
		NoiseFloor: g.sensitivity,
	}, nil
}

// EstimateWaterTable converts a gravity anomaly into a toy water-table
// depth via the infinite-slab model: depth = |anomaly| / (2π·G·Δρ) with
// Δρ the water density contrast. A zero anomaly has no defined depth and
// yields ErrZeroAnomaly instead of a silent placeholder.
func (g *Gravimeter) EstimateWaterTable(summary GravitySummary) (WaterTable, error) {
	anomaly := math.Abs(summary.Anomaly)
	if anomaly == 0 {
		return WaterTable{}, ErrZeroAnomaly
	}

	return WaterTable{
		Depth:      anomaly / (2 * math.Pi * gravitationalConstant * waterDensity),
		Confidence: 1 - summary.NoiseFloor/anomaly,
	}, nil
}
