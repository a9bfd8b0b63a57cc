package envseal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func testCipherKey() []byte {
	return bytes.Repeat([]byte{0x42}, keySize)
}

func testNonce() []byte {
	return bytes.Repeat([]byte{0x24}, nonceSize)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"short", []byte("x")},
		{"password", []byte("P@ssw0rd!")},
		{"binary", []byte{0x00, 0x01, 0xff, 0xfe}},
		{"larger", bytes.Repeat([]byte("abc"), 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ciphertext, tag, err := sealBytes(tt.plaintext, testCipherKey(), testNonce())
			require.NoError(t, err)

			plaintext, err := openBytes(ciphertext, testCipherKey(), testNonce(), tag)
			require.NoError(t, err)
			require.Equal(t, tt.plaintext, plaintext)
		})
	}
}

func TestSealBytes_Lengths(t *testing.T) {
	plaintext := []byte("some credential")

	ciphertext, tag, err := sealBytes(plaintext, testCipherKey(), testNonce())
	require.NoError(t, err)

	// GCM in counter mode: ciphertext length equals plaintext length,
	// tag is fixed.
	require.Len(t, ciphertext, len(plaintext))
	require.Len(t, tag, tagSize)
}

func TestOpenBytes_TamperedCiphertext(t *testing.T) {
	ciphertext, tag, err := sealBytes([]byte("secret"), testCipherKey(), testNonce())
	require.NoError(t, err)

	ciphertext[0] ^= 0x01

	_, err = openBytes(ciphertext, testCipherKey(), testNonce(), tag)
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestOpenBytes_TamperedTag(t *testing.T) {
	ciphertext, tag, err := sealBytes([]byte("secret"), testCipherKey(), testNonce())
	require.NoError(t, err)

	tag[tagSize-1] ^= 0x80

	_, err = openBytes(ciphertext, testCipherKey(), testNonce(), tag)
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestOpenBytes_WrongKey(t *testing.T) {
	ciphertext, tag, err := sealBytes([]byte("secret"), testCipherKey(), testNonce())
	require.NoError(t, err)

	wrongKey := bytes.Repeat([]byte{0x43}, keySize)
	_, err = openBytes(ciphertext, wrongKey, testNonce(), tag)
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestOpenBytes_WrongNonce(t *testing.T) {
	ciphertext, tag, err := sealBytes([]byte("secret"), testCipherKey(), testNonce())
	require.NoError(t, err)

	wrongNonce := bytes.Repeat([]byte{0x25}, nonceSize)
	_, err = openBytes(ciphertext, testCipherKey(), wrongNonce, tag)
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestNewAEAD_InvalidKeySize(t *testing.T) {
	_, err := newAEAD(make([]byte, 17))
	require.ErrorIs(t, err, ErrKeyDerivationFailed)
}

func TestRandomBytes(t *testing.T) {
	a, err := randomBytes(saltSize)
	require.NoError(t, err)
	require.Len(t, a, saltSize)

	b, err := randomBytes(saltSize)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
