package keyex

import (
	"crypto/ecdh"
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// SharedKeySize is the length in bytes of every derived symmetric key.
const SharedKeySize = 32

// ErrNilKey indicates a nil private or peer public key.
var ErrNilKey = errors.New("keyex: private and peer public key must be non-nil")

// GenerateKeyPair draws a fresh ECDH key pair on P-384.
func GenerateKeyPair() (*ecdh.PrivateKey, *ecdh.PublicKey, error) {
	priv, err := ecdh.P384().GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("keyex: generating key pair: %w", err)
	}

	return priv, priv.PublicKey(), nil
}

// DeriveSharedKey agrees on the ECDH shared secret between priv and
// peer, then derives a SharedKeySize-byte key via HKDF-SHA384 bound to
// info. The same (secret, info) pair always yields the same key, so
// both parties derive identical material.
func DeriveSharedKey(priv *ecdh.PrivateKey, peer *ecdh.PublicKey, info []byte) ([]byte, error) {
	if priv == nil || peer == nil {
		return nil, ErrNilKey
	}

	secret, err := priv.ECDH(peer)
	if err != nil {
		return nil, fmt.Errorf("keyex: computing shared secret: %w", err)
	}

	key := make([]byte, SharedKeySize)
	if _, err := io.ReadFull(hkdf.New(sha512.New384, secret, nil, info), key); err != nil {
		return nil, fmt.Errorf("keyex: deriving key: %w", err)
	}

	return key, nil
}
