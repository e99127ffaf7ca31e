// Package qamp is an in-memory playground for classical simulations of
// quantum-flavored algorithms — amplitude amplification front and
// center, with small independent demo utilities around it.
//
// 🚀 What is qamp?
//
//	A deterministic toolkit that brings together:
//		• grover/  — Grover search over an explicit complex state vector:
//		             uniform superposition, oracle sign flips, inversion
//		             about the mean, optimal ⌊π/4·√N⌋ iteration counts,
//		             argmax measurement, concurrent batch runs
//		• qkd/     — a BB84-style bit/basis sift (toy, no physics)
//		• keyex/   — a classical ECDH P-384 + HKDF-SHA384 wrapper
//		• sensors/ — synthetic magnetometer, gravimeter and radar models
//		             adding Gaussian noise to caller data
//
// ✨ Why choose qamp?
//
//   - Deterministic by construction – seeded noise, argmax measurement,
//     reproducible runs on every platform
//   - Explicit errors – every invalid input surfaces a sentinel error;
//     nothing is swallowed or logged-and-nulled
//   - Clear ownership – one simulator owns one state vector; nothing
//     else touches it
//
// The simulator is a linear-algebra model over a flat state vector, not
// a circuit simulator. The demo utilities share no state with it and
// with each other.
//
// Dive into the per-package docs for algorithms, complexity notes and
// examples, or run the cmd/qamp binary for a console tour.
//
//	go get github.com/katalvlaran/qamp
package qamp
