package sensors

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Radar models a two-mode "entangled photon" scanner: a Gaussian signal
// beam with a perfectly anti-correlated idler, correlated against the
// reflected return to form an image. Not safe for concurrent use.
type Radar struct {
	photons    int
	wavelength float64
	beam       distuv.Normal
}

// NewRadar builds a radar. photons ≤ 0 selects DefaultRadarPhotons,
// wavelength ≤ 0 selects DefaultRadarWavelength; seed 0 selects the
// fixed default seed.
func NewRadar(photons int, wavelength float64, seed uint64) *Radar {
	if photons <= 0 {
		photons = DefaultRadarPhotons
	}
	if wavelength <= 0 {
		wavelength = DefaultRadarWavelength
	}

	return &Radar{
		photons:    photons,
		wavelength: wavelength,
		beam:       noiseSource(1, seed),
	}
}

// Photons reports the configured pair count per scan.
func (r *Radar) Photons() int { return r.photons }

// EntangledPhotons draws n standard-normal signal photons and their
// perfectly anti-correlated idlers (idler_i = −signal_i).
// Returns ErrPhotonCount when n ≤ 0.
//
// Complexity: O(n).
func (r *Radar) EntangledPhotons(n int) (signal, idler []float64, err error) {
	if n <= 0 {
		return nil, nil, ErrPhotonCount
	}

	signal = make([]float64, n)
	idler = make([]float64, n)
	for i := range signal {
		signal[i] = r.beam.Rand()
		idler[i] = -signal[i]
	}

	return signal, idler, nil
}

// ScanCrop reflects the signal beam off the area profile (cycling
// through the profile when it is shorter than the beam) and correlates
// the return with the idler to form the image. Returns ErrNoSamples for
// an empty area.
//
// Complexity: O(photons·(photons+len(area))) for the correlation.
func (r *Radar) ScanCrop(area []float64) (Scan, error) {
	if len(area) == 0 {
		return Scan{}, ErrNoSamples
	}

	signal, idler, err := r.EntangledPhotons(r.photons)
	if err != nil {
		return Scan{}, err
	}

	reflected := make([]float64, len(signal))
	for i, s := range signal {
		reflected[i] = s * area[i%len(area)]
	}

	return Scan{
		Image:      crossCorrelate(reflected, idler),
		Resolution: r.wavelength / math.Sqrt(float64(r.photons)),
	}, nil
}

// CropHealth aggregates the scan image into toy health indicators.
func (r *Radar) CropHealth(scan Scan) (CropHealth, error) {
	if len(scan.Image) == 0 {
		return CropHealth{}, ErrNoSamples
	}

	var biomass float64
	for _, v := range scan.Image {
		biomass += v
	}

	return CropHealth{
		Biomass:    biomass,
		Density:    stat.Mean(scan.Image, nil),
		Variation:  stat.PopStdDev(scan.Image, nil),
		Resolution: scan.Resolution,
	}, nil
}

// crossCorrelate returns the full discrete cross-correlation of a
// against v: output length len(a)+len(v)−1, every relative shift of the
// two sequences contributing one coefficient.
func crossCorrelate(a, v []float64) []float64 {
	out := make([]float64, len(a)+len(v)-1)
	for k := range out {
		shift := k - (len(v) - 1)
		for j := range v {
			if i := j + shift; i >= 0 && i < len(a) {
				out[k] += a[i] * v[j]
			}
		}
	}

	return out
}
