// Package qkd_test contains unit tests for the BB84-style round:
// deterministic encode/measure/sift arithmetic, validation, and the
// end-to-end agreement property.
package qkd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qamp/qkd"
)

//----------------------------------------------------------------------------//
// Encode / Measure
//----------------------------------------------------------------------------//

// TestEncode_Angles pins the polarization table: Rectilinear 0°/90°,
// Diagonal 45°/135°.
func TestEncode_Angles(t *testing.T) {
	bits := []int{0, 1, 0, 1}
	bases := []qkd.Basis{qkd.Rectilinear, qkd.Rectilinear, qkd.Diagonal, qkd.Diagonal}

	photons, err := qkd.Encode(bits, bases)
	require.NoError(t, err)
	require.Equal(t, []qkd.Polarization{0, 90, 45, 135}, photons)
}

// TestMeasure_MatchingBasis decodes exactly when the receiver uses the
// encoding basis.
func TestMeasure_MatchingBasis(t *testing.T) {
	bits := []int{1, 0, 1, 1, 0}
	bases := []qkd.Basis{qkd.Diagonal, qkd.Rectilinear, qkd.Rectilinear, qkd.Diagonal, qkd.Diagonal}

	photons, err := qkd.Encode(bits, bases)
	require.NoError(t, err)

	measured, err := qkd.Measure(photons, bases)
	require.NoError(t, err)
	require.Equal(t, bits, measured)
}

// TestMeasure_WrongBasis decodes by nearest angle: a 0° photon read in
// the diagonal basis lands on 45° = bit 0.
func TestMeasure_WrongBasis(t *testing.T) {
	measured, err := qkd.Measure([]qkd.Polarization{0, 135}, []qkd.Basis{qkd.Diagonal, qkd.Rectilinear})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, measured)
}

//----------------------------------------------------------------------------//
// Sift
//----------------------------------------------------------------------------//

// TestSift_KeepsMatchingBases keeps exactly the positions with equal
// bases, preserving order.
func TestSift_KeepsMatchingBases(t *testing.T) {
	bits := []int{1, 0, 1, 0}
	sender := []qkd.Basis{qkd.Rectilinear, qkd.Diagonal, qkd.Diagonal, qkd.Rectilinear}
	receiver := []qkd.Basis{qkd.Rectilinear, qkd.Rectilinear, qkd.Diagonal, qkd.Diagonal}

	key, rate, err := qkd.Sift(bits, bits, sender, receiver)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1}, key, "positions 0 and 2 match")
	require.Zero(t, rate)
}

// TestSift_ErrorRate counts disagreements among kept positions only.
func TestSift_ErrorRate(t *testing.T) {
	measured := []int{1, 0, 0}
	reference := []int{1, 1, 1}
	same := []qkd.Basis{qkd.Rectilinear, qkd.Rectilinear, qkd.Rectilinear}

	key, rate, err := qkd.Sift(measured, reference, same, same)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 0}, key)
	require.InDelta(t, 2.0/3.0, rate, 1e-12)
	require.Greater(t, rate, qkd.ErrorRateThreshold)
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestEncode_Errors(t *testing.T) {
	_, err := qkd.Encode([]int{0, 1}, []qkd.Basis{qkd.Rectilinear})
	require.ErrorIs(t, err, qkd.ErrLengthMismatch)

	_, err = qkd.Encode([]int{2}, []qkd.Basis{qkd.Rectilinear})
	require.ErrorIs(t, err, qkd.ErrInvalidBit)

	_, err = qkd.Encode([]int{0}, []qkd.Basis{qkd.Basis(9)})
	require.ErrorIs(t, err, qkd.ErrUnknownBasis)
}

func TestMeasure_Errors(t *testing.T) {
	_, err := qkd.Measure([]qkd.Polarization{0}, nil)
	require.ErrorIs(t, err, qkd.ErrLengthMismatch)

	_, err = qkd.Measure([]qkd.Polarization{0}, []qkd.Basis{qkd.Basis(-1)})
	require.ErrorIs(t, err, qkd.ErrUnknownBasis)
}

func TestRandom_Errors(t *testing.T) {
	for _, n := range []int{0, -5} {
		_, err := qkd.RandomBits(n)
		require.ErrorIs(t, err, qkd.ErrBitCount, "n=%d", n)
		_, err = qkd.RandomBases(n)
		require.ErrorIs(t, err, qkd.ErrBitCount, "n=%d", n)
	}
}

//----------------------------------------------------------------------------//
// End-to-end
//----------------------------------------------------------------------------//

// TestRandomBits_Range: all drawn values are bits.
func TestRandomBits_Range(t *testing.T) {
	bits, err := qkd.RandomBits(512)
	require.NoError(t, err)
	require.Len(t, bits, 512)
	for i, b := range bits {
		require.Contains(t, []int{0, 1}, b, "position %d", i)
	}
}

// TestExchange_Agreement: in this noiseless model the sifted keys of
// both parties agree exactly, so the error rate is always zero.
func TestExchange_Agreement(t *testing.T) {
	res, err := qkd.Exchange(256)
	require.NoError(t, err)
	require.Equal(t, 256, res.Raw)
	require.Zero(t, res.ErrorRate)
	require.LessOrEqual(t, len(res.Key), 256)
	// With 256 positions the chance of zero matching bases is 2⁻²⁵⁶.
	require.NotEmpty(t, res.Key)
	for i, b := range res.Key {
		require.Contains(t, []int{0, 1}, b, "position %d", i)
	}
}
