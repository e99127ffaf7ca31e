// Package qkd implements a toy BB84-style key-distribution round:
// random bits encoded as polarization angles in randomly chosen bases,
// measured in independently chosen bases, then sifted down to the
// positions where both parties picked the same basis.
//
// What:
//
//   - RandomBits / RandomBases draw from crypto/rand.
//   - Encode maps (bit, basis) pairs to polarization angles in degrees:
//     Rectilinear {0°, 90°}, Diagonal {45°, 135°}.
//   - Measure decodes photons against the receiver's bases by nearest
//     angle within the basis set.
//   - Sift keeps only the positions where sender and receiver bases
//     match and reports the observed error rate.
//   - Exchange runs the whole round and returns the sifted key.
//
// Why:
//
//   - Demonstrates the sifting arithmetic of BB84 end to end with
//     explicit, inspectable intermediate values.
//
// This is a classical demonstration with no physics: no eavesdropper,
// no no-cloning argument, and measurement in the wrong basis decodes
// deterministically instead of randomly. Mismatched positions are
// discarded by sifting either way, so the sifted keys of both parties
// agree exactly.
//
// Errors:
//
//   - ErrBitCount: requested count ≤ 0.
//   - ErrLengthMismatch: paired slices of different lengths.
//   - ErrInvalidBit: a bit outside {0, 1}.
//   - ErrUnknownBasis: a basis outside {Rectilinear, Diagonal}.
package qkd
