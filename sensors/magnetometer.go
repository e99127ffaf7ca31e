package sensors

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Magnetometer models a field sensor with a Gaussian noise floor at its
// sensitivity. Not safe for concurrent use.
type Magnetometer struct {
	sensitivity float64
	noise       distuv.Normal
}

// NewMagnetometer builds a magnetometer. sensitivity ≤ 0 selects
// DefaultMagnetometerSensitivity; seed 0 selects the fixed default seed.
func NewMagnetometer(sensitivity float64, seed uint64) *Magnetometer {
	if sensitivity <= 0 {
		sensitivity = DefaultMagnetometerSensitivity
	}

	return &Magnetometer{
		sensitivity: sensitivity,
		noise:       noiseSource(sensitivity, seed),
	}
}

// Sensitivity reports the configured noise floor in Tesla.
func (m *Magnetometer) Sensitivity() float64 { return m.sensitivity }

// MeasureField perturbs each sample with N(0, sensitivity) noise and
// summarizes the noisy field. Returns ErrNoSamples for empty input; the
// input slice is never modified.
//
// Complexity: O(n).
func (m *Magnetometer) MeasureField(samples []float64) (FieldSummary, error) {
	if len(samples) == 0 {
		return FieldSummary{}, ErrNoSamples
	}

	measured := make([]float64, len(samples))
	for i, s := range samples {
		measured[i] = s + m.noise.Rand()
	}

	return FieldSummary{
		Mean:       stat.Mean(measured, nil),
		Std:        stat.PopStdDev(measured, nil),
		NoiseFloor: m.sensitivity,
	}, nil
}

// SoilComposition maps field statistics to a toy composition estimate:
// iron content scales with |mean field|, mineral density with the field
// spread, both reported in ppm.
func (m *Magnetometer) SoilComposition(field FieldSummary) SoilAnalysis {
	return SoilAnalysis{
		IronContent:    math.Abs(field.Mean) * 1e6,
		MineralDensity: field.Std * 1e6,
	}
}
