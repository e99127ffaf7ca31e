package qkd

import (
	"crypto/rand"
	"fmt"
)

// RandomBits draws n uniformly random bits from crypto/rand.
// Returns ErrBitCount when n ≤ 0.
//
// Complexity: O(n).
func RandomBits(n int) ([]int, error) {
	buf, err := randomBytes(n)
	if err != nil {
		return nil, err
	}

	bits := make([]int, n)
	for i, b := range buf {
		bits[i] = int(b & 1)
	}

	return bits, nil
}

// RandomBases draws n uniformly random bases from crypto/rand.
// Returns ErrBitCount when n ≤ 0.
//
// Complexity: O(n).
func RandomBases(n int) ([]Basis, error) {
	buf, err := randomBytes(n)
	if err != nil {
		return nil, err
	}

	bases := make([]Basis, n)
	for i, b := range buf {
		bases[i] = Basis(b & 1)
	}

	return bases, nil
}

// Encode maps each (bit, basis) pair to its polarization angle:
// Rectilinear bits become 0°/90°, Diagonal bits 45°/135°.
//
// Complexity: O(n).
func Encode(bits []int, bases []Basis) ([]Polarization, error) {
	if len(bits) != len(bases) {
		return nil, ErrLengthMismatch
	}

	photons := make([]Polarization, len(bits))
	for i, bit := range bits {
		if bit != 0 && bit != 1 {
			return nil, fmt.Errorf("%w: position %d holds %d", ErrInvalidBit, i, bit)
		}
		angles, ok := basisAngles[bases[i]]
		if !ok {
			return nil, fmt.Errorf("%w: position %d holds %d", ErrUnknownBasis, i, bases[i])
		}
		photons[i] = angles[bit]
	}

	return photons, nil
}

// Measure decodes each photon against the receiver's basis by picking
// the nearest angle within that basis set and reporting its bit index.
// A photon measured in its encoding basis decodes exactly; in the other
// basis the nearest-angle rule stands in for a physical random outcome.
//
// Complexity: O(n).
func Measure(photons []Polarization, bases []Basis) ([]int, error) {
	if len(photons) != len(bases) {
		return nil, ErrLengthMismatch
	}

	bits := make([]int, len(photons))
	for i, photon := range photons {
		angles, ok := basisAngles[bases[i]]
		if !ok {
			return nil, fmt.Errorf("%w: position %d holds %d", ErrUnknownBasis, i, bases[i])
		}
		if abs(float64(photon-angles[1])) < abs(float64(photon-angles[0])) {
			bits[i] = 1
		}
	}

	return bits, nil
}

// Sift keeps the bits at positions where sender and receiver chose the
// same basis, and reports the error rate among kept positions given the
// sender's reference bits.
//
// Complexity: O(n).
func Sift(bits, reference []int, sender, receiver []Basis) ([]int, float64, error) {
	if len(bits) != len(reference) || len(bits) != len(sender) || len(bits) != len(receiver) {
		return nil, 0, ErrLengthMismatch
	}

	key := make([]int, 0, len(bits))
	mismatched := 0
	for i := range bits {
		if sender[i] != receiver[i] {
			continue
		}
		key = append(key, bits[i])
		if bits[i] != reference[i] {
			mismatched++
		}
	}

	rate := 0.0
	if len(key) > 0 {
		rate = float64(mismatched) / float64(len(key))
	}

	return key, rate, nil
}

// Exchange runs one full round: the sender draws random bits and bases
// and encodes photons; the receiver draws its own bases and measures;
// sifting discards every position where the bases differ.
//
// Complexity: O(n).
func Exchange(n int) (*Result, error) {
	senderBits, err := RandomBits(n)
	if err != nil {
		return nil, err
	}
	senderBases, err := RandomBases(n)
	if err != nil {
		return nil, err
	}
	photons, err := Encode(senderBits, senderBases)
	if err != nil {
		return nil, err
	}

	receiverBases, err := RandomBases(n)
	if err != nil {
		return nil, err
	}
	measured, err := Measure(photons, receiverBases)
	if err != nil {
		return nil, err
	}

	key, rate, err := Sift(measured, senderBits, senderBases, receiverBases)
	if err != nil {
		return nil, err
	}

	return &Result{Key: key, ErrorRate: rate, Raw: n}, nil
}

func randomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrBitCount
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("qkd: reading entropy: %w", err)
	}

	return buf, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
