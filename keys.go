package envseal

import (
	"crypto/subtle"
	"encoding/hex"
)

const masterKeySize = 32 // 256 bits of entropy, 64 hex characters

// GenerateMasterKey produces a fresh 256-bit master key as a 64-character
// hex string, suitable as a new owner's master key. Entropy comes from
// the system CSPRNG only.
func GenerateMasterKey() (string, error) {
	raw, err := randomBytes(masterKeySize)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// SecureCompare compares two strings in constant time. Use it for any
// secondary token or hash comparison so the comparison cost does not
// depend on where the strings first differ. Length is not hidden.
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
