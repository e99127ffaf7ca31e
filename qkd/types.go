package qkd

import "errors"

// Sentinel errors for qkd operations.
var (
	// ErrBitCount indicates a non-positive requested bit count.
	ErrBitCount = errors.New("qkd: bit count must be positive")
	// ErrLengthMismatch indicates paired slices of different lengths.
	ErrLengthMismatch = errors.New("qkd: paired slices must have equal length")
	// ErrInvalidBit indicates a bit value outside {0, 1}.
	ErrInvalidBit = errors.New("qkd: bits must be 0 or 1")
	// ErrUnknownBasis indicates a basis outside the supported set.
	ErrUnknownBasis = errors.New("qkd: unknown measurement basis")
)

// ErrorRateThreshold is the sifted-key error rate above which a real
// deployment would abort the exchange.
const ErrorRateThreshold = 0.15

// Basis selects the polarization basis used to encode or measure one bit.
type Basis int

const (
	// Rectilinear encodes bits as 0° / 90° polarization.
	Rectilinear Basis = iota
	// Diagonal encodes bits as 45° / 135° polarization.
	Diagonal
)

// Polarization is a photon polarization angle in degrees.
type Polarization float64

// basisAngles maps each basis to its two angles, indexed by bit value.
var basisAngles = map[Basis][2]Polarization{
	Rectilinear: {0, 90},
	Diagonal:    {45, 135},
}

// Result is the outcome of one full Exchange round.
type Result struct {
	// Key is the sifted key: the receiver's decoded bits at positions
	// where both parties chose the same basis.
	Key []int
	// ErrorRate is the fraction of disagreeing bits among the sifted
	// positions. Always 0 in this noiseless model.
	ErrorRate float64
	// Raw is the number of bits sent before sifting.
	Raw int
}
