package envseal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrors_Distinct(t *testing.T) {
	errs := []error{
		ErrInvalidInput,
		ErrMalformedEnvelope,
		ErrKeyDerivationFailed,
		ErrAuthenticationFailed,
		ErrDecompressionFailed,
		ErrUnsupportedCompression,
	}

	seen := make(map[string]bool)
	for _, err := range errs {
		require.True(t, len(err.Error()) > 0)
		require.False(t, seen[err.Error()], "duplicate error message: %s", err)
		seen[err.Error()] = true
	}
}

func TestErrors_NoPlaintextLeak(t *testing.T) {
	envelope, err := EncryptRecord("hunter2-super-secret", testMasterKey)
	require.NoError(t, err)

	_, err = DecryptRecord(envelope, otherMasterKey)
	require.Error(t, err)
	require.NotContains(t, err.Error(), "hunter2")
	require.NotContains(t, err.Error(), testMasterKey)
	require.NotContains(t, err.Error(), otherMasterKey)
}
