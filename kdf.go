package envseal

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// Protocol constants. All four are fixed: changing any of them breaks
// every envelope already written with the old values.
const (
	keySize   = 32 // AES-256 key
	saltSize  = 32 // PBKDF2 salt, one per encryption
	nonceSize = 16 // GCM nonce, matches the AES block size
	tagSize   = 16 // GCM authentication tag

	// kdfIterations is the PBKDF2 work factor. 100k rounds of
	// HMAC-SHA256 costs tens of milliseconds, deliberate drag against
	// brute-forcing the master key.
	kdfIterations = 100_000

	// headerSize is the fixed portion of a decoded envelope; everything
	// past it is ciphertext.
	headerSize = saltSize + nonceSize + tagSize
)

// deriveKey stretches a master key and salt into a 32-byte AES key
// using PBKDF2-HMAC-SHA256. Deterministic: decryption re-derives the
// same key from the salt stored in the envelope.
//
// The derived key is one-shot. It lives for a single seal or open call
// and is never cached or persisted.
func deriveKey(masterKey string, salt []byte) ([]byte, error) {
	if masterKey == "" {
		return nil, ErrInvalidInput
	}
	if len(salt) != saltSize {
		return nil, ErrKeyDerivationFailed
	}
	return pbkdf2.Key([]byte(masterKey), salt, kdfIterations, keySize, sha256.New), nil
}
