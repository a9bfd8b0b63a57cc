package envseal

// Option is a functional option for configuring a Sealer.
type Option func(*config)

// config holds Sealer configuration. The cryptographic parameters
// (iterations, segment lengths) are protocol constants and deliberately
// not configurable; only the envelope's compression behavior is.
type config struct {
	compressionEnabled   bool
	compressionThreshold int
	compressionAlgorithm string
}

func defaultConfig() *config {
	return &config{
		compressionThreshold: defaultCompressionThreshold,
		compressionAlgorithm: compressionAlgorithmZstd,
	}
}

// WithCompression enables zstd compression of the plaintext before
// sealing. A compressing Sealer emits versioned ("v2:") envelopes; the
// default, non-compressing Sealer emits the legacy format. Either kind
// of Sealer decrypts both formats.
func WithCompression() Option {
	return func(c *config) {
		c.compressionEnabled = true
	}
}

// WithCompressionThreshold sets the minimum plaintext size in bytes
// before compression is attempted. Default is 256. Smaller records are
// sealed as-is even when compression is enabled.
func WithCompressionThreshold(bytes int) Option {
	return func(c *config) {
		c.compressionThreshold = bytes
	}
}

// WithCompressionAlgorithm sets the compression algorithm.
// Currently only "zstd" (default) is supported.
func WithCompressionAlgorithm(algo string) Option {
	return func(c *config) {
		c.compressionAlgorithm = algo
	}
}
