package envseal

import (
	"strings"
	"testing"
)

// The KDF dominates every operation by design (100k PBKDF2 rounds);
// these benchmarks mostly measure that fixed cost plus GCM throughput.

func benchmarkEncrypt(b *testing.B, size int) {
	plaintext := strings.Repeat("x", size)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := EncryptRecord(plaintext, testMasterKey); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncryptRecord_16B(b *testing.B)  { benchmarkEncrypt(b, 16) }
func BenchmarkEncryptRecord_1KB(b *testing.B)  { benchmarkEncrypt(b, 1024) }
func BenchmarkEncryptRecord_64KB(b *testing.B) { benchmarkEncrypt(b, 64*1024) }

func BenchmarkDecryptRecord(b *testing.B) {
	envelope, err := EncryptRecord("P@ssw0rd!", testMasterKey)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecryptRecord(envelope, testMasterKey); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRotateRecord(b *testing.B) {
	envelope, err := EncryptRecord("P@ssw0rd!", "keyA")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := RotateRecord(envelope, "keyA", "keyB"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDeriveKey(b *testing.B) {
	salt := make([]byte, saltSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := deriveKey(testMasterKey, salt); err != nil {
			b.Fatal(err)
		}
	}
}
