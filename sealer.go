package envseal

// Sealer performs envelope encryption with a fixed configuration.
// It is stateless apart from that configuration: every call takes the
// master key explicitly and derives a fresh one-shot key, so a Sealer
// is safe for concurrent use and holds no key material.
type Sealer struct {
	config *config
}

// defaultSealer backs the package-level functions. It never compresses,
// so its output is always the legacy envelope format.
var defaultSealer = &Sealer{config: defaultConfig()}

// New creates a Sealer with the given options.
//
// Example:
//
//	sealer, err := envseal.New(
//	    envseal.WithCompression(),
//	    envseal.WithCompressionThreshold(512),
//	)
func New(opts ...Option) (*Sealer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.compressionAlgorithm != compressionAlgorithmZstd {
		return nil, ErrUnsupportedCompression
	}
	if cfg.compressionThreshold <= 0 {
		cfg.compressionThreshold = defaultCompressionThreshold
	}

	return &Sealer{config: cfg}, nil
}

// Encrypt envelope-encrypts plaintext under masterKey and returns the
// encoded envelope. A fresh salt and nonce are generated per call;
// encrypting the same plaintext twice yields two different envelopes.
func (s *Sealer) Encrypt(plaintext, masterKey string) (string, error) {
	if plaintext == "" || masterKey == "" {
		return "", ErrInvalidInput
	}

	salt, err := randomBytes(saltSize)
	if err != nil {
		return "", err
	}
	nonce, err := randomBytes(nonceSize)
	if err != nil {
		return "", err
	}

	key, err := deriveKey(masterKey, salt)
	if err != nil {
		return "", err
	}

	if s.config.compressionEnabled {
		toSeal, flag := maybeCompress([]byte(plaintext), s.config.compressionThreshold)
		ciphertext, tag, err := sealBytes(toSeal, key, nonce)
		if err != nil {
			return "", err
		}
		return encodeEnvelopeV2(flag, salt, nonce, tag, ciphertext), nil
	}

	ciphertext, tag, err := sealBytes([]byte(plaintext), key, nonce)
	if err != nil {
		return "", err
	}
	return encodeEnvelope(salt, nonce, tag, ciphertext), nil
}

// Decrypt decodes an envelope (legacy or v2), re-derives the key from
// the embedded salt, and returns the plaintext. It fails with
// ErrMalformedEnvelope, ErrKeyDerivationFailed, or
// ErrAuthenticationFailed; callers answering untrusted parties must not
// pass the distinction along.
func (s *Sealer) Decrypt(envelope, masterKey string) (string, error) {
	if envelope == "" || masterKey == "" {
		return "", ErrInvalidInput
	}

	flag, salt, nonce, tag, ciphertext, err := decodeEnvelope(envelope)
	if err != nil {
		return "", err
	}

	key, err := deriveKey(masterKey, salt)
	if err != nil {
		return "", err
	}

	plaintext, err := openBytes(ciphertext, key, nonce, tag)
	if err != nil {
		return "", err
	}

	plaintext, err = decompress(plaintext, flag)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// Verify reports whether the envelope decrypts cleanly under masterKey,
// without exposing the plaintext or the failure cause. Intended for
// offline consistency checks only; exposed to untrusted callers it
// becomes a decryption oracle.
func (s *Sealer) Verify(envelope, masterKey string) bool {
	_, err := s.Decrypt(envelope, masterKey)
	return err == nil
}
