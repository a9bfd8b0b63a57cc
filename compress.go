package envseal

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Default compression settings
const (
	defaultCompressionThreshold = 256  // bytes of plaintext before compression is tried
	minCompressionSavings       = 0.10 // 10% minimum savings to keep the compressed form

	// maxDecompressedSize caps decompressed output (64MB) so a small
	// hostile envelope cannot expand to consume all available memory.
	maxDecompressedSize = 64 * 1024 * 1024
)

const compressionAlgorithmZstd = "zstd"

var (
	// zstd encoder and decoder are thread-safe and reusable
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
	zstdOnce    sync.Once
	zstdErr     error
)

// initZstd initializes the zstd encoder and decoder once.
func initZstd() (*zstd.Encoder, *zstd.Decoder, error) {
	zstdOnce.Do(func() {
		zstdEncoder, zstdErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if zstdErr != nil {
			return
		}
		zstdDecoder, zstdErr = zstd.NewReader(nil)
		if zstdErr != nil {
			zstdEncoder.Close()
			zstdEncoder = nil
		}
	})
	return zstdEncoder, zstdDecoder, zstdErr
}

func compressZstd(data []byte) ([]byte, error) {
	encoder, _, err := initZstd()
	if err != nil {
		return nil, err
	}
	return encoder.EncodeAll(data, nil), nil
}

func decompressZstd(data []byte) ([]byte, error) {
	_, decoder, err := initZstd()
	if err != nil {
		return nil, err
	}
	result, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, ErrDecompressionFailed
	}
	if len(result) > maxDecompressedSize {
		return nil, ErrDecompressionFailed
	}
	return result, nil
}

// maybeCompress compresses plaintext if it meets the threshold and the
// compressed form is actually smaller. Returns the (possibly
// compressed) data and the flag byte for the v2 envelope.
func maybeCompress(data []byte, threshold int) ([]byte, byte) {
	if len(data) < threshold {
		return data, flagNoCompression
	}

	compressed, err := compressZstd(data)
	if err != nil {
		// Compression is an optimization; fall back to the original.
		return data, flagNoCompression
	}

	savings := float64(len(data)-len(compressed)) / float64(len(data))
	if savings < minCompressionSavings {
		return data, flagNoCompression
	}

	return compressed, flagZstd
}

// decompress restores plaintext based on the envelope's flag byte.
func decompress(data []byte, flag byte) ([]byte, error) {
	switch flag {
	case flagNoCompression:
		return data, nil
	case flagZstd:
		return decompressZstd(data)
	default:
		return nil, ErrUnsupportedCompression
	}
}
