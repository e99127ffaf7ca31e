package sensors_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qamp/sensors"
)

// TestGravimeter_MeasureGravity: the anomaly is exactly the measured
// mean minus the 9.81 m/s² reference.
func TestGravimeter_MeasureGravity(t *testing.T) {
	samples := make([]float64, 50)
	for i := range samples {
		samples[i] = sensors.ReferenceGravity
	}

	g := sensors.NewGravimeter(1e-8, 11)
	summary, err := g.MeasureGravity(samples)
	require.NoError(t, err)

	require.InDelta(t, sensors.ReferenceGravity, summary.Gravity, 1e-7)
	require.InDelta(t, summary.Gravity-sensors.ReferenceGravity, summary.Anomaly, 1e-15)
	require.Equal(t, 1e-8, summary.NoiseFloor)
}

func TestGravimeter_MeasureGravity_Empty(t *testing.T) {
	_, err := sensors.NewGravimeter(0, 0).MeasureGravity([]float64{})
	require.ErrorIs(t, err, sensors.ErrNoSamples)
}

// TestGravimeter_EstimateWaterTable pins the infinite-slab arithmetic:
// depth = |anomaly| / (2π·G·1000).
func TestGravimeter_EstimateWaterTable(t *testing.T) {
	g := sensors.NewGravimeter(0, 0)

	table, err := g.EstimateWaterTable(sensors.GravitySummary{
		Anomaly:    1e-6,
		NoiseFloor: 1e-8,
	})
	require.NoError(t, err)
	require.InDelta(t, 2.3846, table.Depth, 1e-3)
	require.InDelta(t, 0.99, table.Confidence, 1e-9)
}

// TestGravimeter_EstimateWaterTable_NegativeAnomaly: the model uses the
// anomaly magnitude, so the sign does not matter.
func TestGravimeter_EstimateWaterTable_NegativeAnomaly(t *testing.T) {
	g := sensors.NewGravimeter(0, 0)

	pos, err := g.EstimateWaterTable(sensors.GravitySummary{Anomaly: 2e-6, NoiseFloor: 1e-8})
	require.NoError(t, err)
	neg, err := g.EstimateWaterTable(sensors.GravitySummary{Anomaly: -2e-6, NoiseFloor: 1e-8})
	require.NoError(t, err)

	require.Equal(t, pos, neg)
}

// TestGravimeter_EstimateWaterTable_ZeroAnomaly: an undefined estimate
// is a surfaced error, never a silent placeholder.
func TestGravimeter_EstimateWaterTable_ZeroAnomaly(t *testing.T) {
	_, err := sensors.NewGravimeter(0, 0).EstimateWaterTable(sensors.GravitySummary{})
	require.ErrorIs(t, err, sensors.ErrZeroAnomaly)
}
