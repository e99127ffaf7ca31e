// Package keyex wraps a classical elliptic-curve key exchange:
// ECDH over NIST P-384 followed by HKDF-SHA384 key derivation.
//
// What:
//
//   - GenerateKeyPair draws a fresh P-384 key pair.
//   - DeriveSharedKey agrees on the ECDH shared secret with a peer's
//     public key and stretches it into a 32-byte symmetric key, bound to
//     a caller-supplied info label.
//
// Both sides calling DeriveSharedKey with their own private key, the
// other side's public key and the same info label obtain the same key.
//
// This is ordinary classical cryptography; nothing here is quantum or
// post-quantum. It stands in for the "quantum-resistant backup channel"
// of the demo, independent of the simulator core.
package keyex
