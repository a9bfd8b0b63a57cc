package envseal

import "errors"

var (
	// ErrInvalidInput indicates an empty plaintext or empty master key.
	ErrInvalidInput = errors.New("envseal: plaintext and master key must be non-empty")

	// ErrMalformedEnvelope indicates the envelope is not valid base64 or
	// is shorter than the fixed salt+nonce+tag header.
	ErrMalformedEnvelope = errors.New("envseal: malformed envelope")

	// ErrKeyDerivationFailed indicates the key derivation step could not
	// produce a key (invariant violation in the salt, or primitive failure).
	ErrKeyDerivationFailed = errors.New("envseal: key derivation failed")

	// ErrAuthenticationFailed indicates GCM tag verification failed:
	// wrong master key, corrupted ciphertext, or tampering.
	ErrAuthenticationFailed = errors.New("envseal: authentication failed")

	// ErrDecompressionFailed indicates zstd decompression of a v2
	// envelope's plaintext failed.
	ErrDecompressionFailed = errors.New("envseal: decompression failed")

	// ErrUnsupportedCompression indicates an unknown compression
	// algorithm name or flag byte.
	ErrUnsupportedCompression = errors.New("envseal: unsupported compression algorithm")
)
