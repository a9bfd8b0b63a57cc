package envseal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0xab}, saltSize)

	key1, err := deriveKey("correct horse battery staple", salt)
	require.NoError(t, err)

	key2, err := deriveKey("correct horse battery staple", salt)
	require.NoError(t, err)

	// Same (masterKey, salt) must re-derive the same key, or stored
	// envelopes could never be opened.
	require.Equal(t, key1, key2)
	require.Len(t, key1, keySize)
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	salt1 := bytes.Repeat([]byte{0x01}, saltSize)
	salt2 := bytes.Repeat([]byte{0x02}, saltSize)

	key1, err := deriveKey("master", salt1)
	require.NoError(t, err)

	key2, err := deriveKey("master", salt2)
	require.NoError(t, err)

	require.NotEqual(t, key1, key2)
}

func TestDeriveKey_DifferentMasterKeys(t *testing.T) {
	salt := bytes.Repeat([]byte{0x7f}, saltSize)

	key1, err := deriveKey("master-a", salt)
	require.NoError(t, err)

	key2, err := deriveKey("master-b", salt)
	require.NoError(t, err)

	require.NotEqual(t, key1, key2)
}

func TestDeriveKey_EmptyMasterKey(t *testing.T) {
	salt := make([]byte, saltSize)
	_, err := deriveKey("", salt)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeriveKey_InvalidSaltLength(t *testing.T) {
	tests := []struct {
		name     string
		saltSize int
	}{
		{"empty", 0},
		{"too short", 16},
		{"31 bytes", 31},
		{"33 bytes", 33},
		{"too long", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deriveKey("master", make([]byte, tt.saltSize))
			require.ErrorIs(t, err, ErrKeyDerivationFailed)
		})
	}
}

func TestDeriveKey_OutputIsNonZero(t *testing.T) {
	key, err := deriveKey("master", make([]byte, saltSize))
	require.NoError(t, err)
	require.False(t, bytes.Equal(key, make([]byte, keySize)), "derived key should not be all zeros")
}
