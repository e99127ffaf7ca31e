// Package sensors provides synthetic "quantum sensor" models for demo
// pipelines: each model adds Gaussian noise at the instrument's
// sensitivity to caller-supplied samples and summarizes the result.
//
// What:
//
//   - Magnetometer — magnetic-field summaries and a toy soil-composition
//     estimate from field statistics.
//   - Gravimeter — gravity summaries against the 9.81 m/s² reference and
//     a toy water-table depth estimate from the anomaly.
//   - Radar — anti-correlated "entangled" photon pairs, a
//     cross-correlation crop scan, and derived health indicators.
//
// Why:
//
//   - Exercises the noise/summary arithmetic of the original sensor
//     suite as independent, stateless data transforms; nothing here
//     touches the grover simulator.
//
// Determinism:
//
//   - Every model takes a seed; the same seed reproduces the same noise
//     stream (seed 0 selects a fixed default). Models are not safe for
//     concurrent use — each goroutine should own its own instance.
//
// These are statistical toys, not instrument physics: "quantum noise" is
// plain Gaussian noise at the configured sensitivity.
//
// Errors:
//
//   - ErrNoSamples: empty input slice.
//   - ErrPhotonCount: non-positive photon count.
//   - ErrZeroAnomaly: water-table estimate from a zero gravity anomaly.
package sensors
