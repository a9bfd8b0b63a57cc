package envseal

import "encoding/json"

// EncryptJSON marshals a value to JSON and envelope-encrypts the
// serialization. Useful for structured secrets (a credential with
// username, password, and notes) that should live in one envelope.
func EncryptJSON[T any](data T, masterKey string) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return EncryptRecord(string(raw), masterKey)
}

// DecryptJSON decrypts an envelope and unmarshals the plaintext JSON.
func DecryptJSON[T any](envelope, masterKey string) (T, error) {
	var zero T

	plaintext, err := DecryptRecord(envelope, masterKey)
	if err != nil {
		return zero, err
	}

	var result T
	if err := json.Unmarshal([]byte(plaintext), &result); err != nil {
		return zero, err
	}
	return result, nil
}
