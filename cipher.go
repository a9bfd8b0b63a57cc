package envseal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
)

// newAEAD builds an AES-256-GCM instance with the protocol's 16-byte
// nonce. The standard GCM nonce is 12 bytes; this format fixed 16 bytes
// (the AES block size) and the codec depends on it staying fixed.
func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDerivationFailed, err)
	}
	aead, err := cipher.NewGCMWithNonceSize(block, nonceSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDerivationFailed, err)
	}
	return aead, nil
}

// sealBytes encrypts plaintext under the derived key and nonce.
// GCM appends the tag to its output; the envelope stores tag before
// ciphertext, so the two are split here.
func sealBytes(plaintext, key, nonce []byte) (ciphertext, tag []byte, err error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, nil, err
	}

	sealed := aead.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - tagSize
	return sealed[:split], sealed[split:], nil
}

// openBytes decrypts ciphertext and verifies the tag. The tag is
// checked before any plaintext is released; on mismatch the caller gets
// ErrAuthenticationFailed and nothing else.
func openBytes(ciphertext, key, nonce, tag []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

// randomBytes fills a fresh buffer from the system CSPRNG. crypto/rand
// is safe for concurrent use; a failure here means the platform's
// entropy source is broken.
func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("envseal: random source failed: %w", err)
	}
	return b, nil
}
