// Package envseal provides per-record envelope encryption for stored
// credentials under a caller-supplied master key.
//
// Plaintext is never persisted: callers hand this package a plaintext
// string and a master key, and get back a single opaque, text-safe
// envelope suitable for a text column. Decryption reverses the trip.
// The master key is always an explicit parameter; the package holds no
// key material between calls.
//
// # Encryption
//
// Each encryption generates a fresh 32-byte salt and derives a one-shot
// 256-bit key from the master key with PBKDF2-HMAC-SHA256 (100,000
// iterations). The plaintext is sealed with AES-256-GCM using a fresh
// 16-byte nonce. Because every call derives a new key from a new salt,
// a (key, nonce) pair can never repeat.
//
// # Envelope Format
//
// The envelope is base64(salt[32] + nonce[16] + tag[16] + ciphertext).
// All three metadata fields have fixed, protocol-constant lengths, so
// no delimiters or length prefixes are needed; everything after byte 64
// is ciphertext.
//
// # Basic Usage
//
//	masterKey, err := envseal.GenerateMasterKey() // 64-char hex
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Encrypt
//	envelope, err := envseal.EncryptRecord("s3cret", masterKey)
//
//	// Decrypt
//	plaintext, err := envseal.DecryptRecord(envelope, masterKey)
//
// # Key Rotation
//
// RotateRecord re-encrypts an envelope under a new master key without
// ever persisting the intermediate plaintext:
//
//	rotated, err := envseal.RotateRecord(envelope, oldKey, newKey)
//
// RotateBatch does the same for many envelopes with bounded
// parallelism; each rotation is independent, so the PBKDF2 cost
// parallelizes cleanly across workers.
//
// # Compression
//
// A Sealer configured with WithCompression emits a versioned envelope
// ("v2:" prefix) whose plaintext may be zstd-compressed before sealing.
// Decryption accepts both formats transparently. The default Sealer and
// the top-level functions always emit the legacy format.
//
// # Errors
//
// Decryption failures are reported as ErrMalformedEnvelope,
// ErrKeyDerivationFailed, or ErrAuthenticationFailed. Callers exposing
// results across a trust boundary should collapse these into a single
// "cannot decrypt" response; distinguishing them to an untrusted party
// builds an oracle. No error or log produced by this package contains
// plaintext or key material.
package envseal
