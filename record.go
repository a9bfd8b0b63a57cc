package envseal

// EncryptRecord encrypts plaintext under masterKey and returns a
// legacy-format envelope string. Fails with ErrInvalidInput if either
// argument is empty.
func EncryptRecord(plaintext, masterKey string) (string, error) {
	return defaultSealer.Encrypt(plaintext, masterKey)
}

// DecryptRecord decrypts an envelope produced by EncryptRecord (or by a
// compressing Sealer) and returns the plaintext.
func DecryptRecord(envelope, masterKey string) (string, error) {
	return defaultSealer.Decrypt(envelope, masterKey)
}

// VerifyIntegrity reports whether the envelope can be decrypted with
// masterKey. See Sealer.Verify for the oracle caveat.
func VerifyIntegrity(envelope, masterKey string) bool {
	return defaultSealer.Verify(envelope, masterKey)
}
