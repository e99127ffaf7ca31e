package sensors

import "errors"

// Sentinel errors for sensor operations.
var (
	// ErrNoSamples indicates an empty input slice.
	ErrNoSamples = errors.New("sensors: input samples must be non-empty")
	// ErrPhotonCount indicates a non-positive photon count.
	ErrPhotonCount = errors.New("sensors: photon count must be positive")
	// ErrZeroAnomaly indicates a water-table estimate was requested for a
	// zero gravity anomaly, where the depth model is undefined.
	ErrZeroAnomaly = errors.New("sensors: gravity anomaly is zero")
)

// Physical constants and instrument defaults.
const (
	// DefaultMagnetometerSensitivity is the noise floor in Tesla.
	DefaultMagnetometerSensitivity = 1e-12
	// DefaultGravimeterSensitivity is the noise floor in m/s².
	DefaultGravimeterSensitivity = 1e-8
	// ReferenceGravity is the nominal surface gravity in m/s².
	ReferenceGravity = 9.81
	// DefaultRadarPhotons is the entangled-pair count per scan.
	DefaultRadarPhotons = 1000
	// DefaultRadarWavelength is the telecom wavelength in meters.
	DefaultRadarWavelength = 1550e-9

	// gravitationalConstant is G in m³/(kg·s²).
	gravitationalConstant = 6.67430e-11
	// waterDensity is the density contrast used by the depth model, kg/m³.
	waterDensity = 1000
)

// FieldSummary describes a noisy magnetic-field measurement.
type FieldSummary struct {
	Mean       float64 // mean measured field, Tesla
	Std        float64 // population standard deviation, Tesla
	NoiseFloor float64 // instrument sensitivity, Tesla
}

// SoilAnalysis is a toy composition estimate from field statistics.
type SoilAnalysis struct {
	IronContent    float64 // ppm
	MineralDensity float64 // ppm
}

// GravitySummary describes a noisy gravity measurement.
type GravitySummary struct {
	Gravity    float64 // mean measured gravity, m/s²
	Anomaly    float64 // mean deviation from ReferenceGravity, m/s²
	NoiseFloor float64 // instrument sensitivity, m/s²
}

// WaterTable is a toy depth estimate from a gravity anomaly.
type WaterTable struct {
	Depth      float64 // meters
	Confidence float64 // 1 − noise/|anomaly|; approaches 1 for strong anomalies
}

// Scan is the raw output of one radar pass.
type Scan struct {
	// Image is the full cross-correlation of the reflected signal with
	// the idler photons, length photons+len(area)−1.
	Image []float64
	// Resolution is the diffraction-style limit λ/√photons, meters.
	Resolution float64
}

// CropHealth aggregates health indicators from a Scan.
type CropHealth struct {
	Biomass    float64 // sum of the correlation image
	Density    float64 // mean of the correlation image
	Variation  float64 // population standard deviation of the image
	Resolution float64 // carried over from the scan
}
