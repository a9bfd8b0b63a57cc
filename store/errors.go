package store

import (
	"errors"

	"github.com/ai8future/envseal"
)

var (
	// ErrNotFound indicates no record exists with the given ID.
	ErrNotFound = errors.New("store: record not found")

	// ErrCannotDecrypt is the single error the store reports for any
	// decryption failure. Malformed envelopes, wrong keys, and tampered
	// ciphertexts are indistinguishable to callers on purpose.
	ErrCannotDecrypt = errors.New("store: cannot decrypt record")
)

// collapse maps envseal decryption errors onto ErrCannotDecrypt so the
// store's surface never acts as a decryption oracle. Errors unrelated
// to decryption pass through.
func collapse(err error) error {
	switch {
	case errors.Is(err, envseal.ErrMalformedEnvelope),
		errors.Is(err, envseal.ErrAuthenticationFailed),
		errors.Is(err, envseal.ErrKeyDerivationFailed),
		errors.Is(err, envseal.ErrDecompressionFailed),
		errors.Is(err, envseal.ErrUnsupportedCompression):
		return ErrCannotDecrypt
	default:
		return err
	}
}
