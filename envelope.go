package envseal

import (
	"encoding/base64"
	"strings"
)

// Envelope formats.
//
// Legacy (v1, the default, bit-compatible with existing data):
//
//	base64(salt[32] + nonce[16] + tag[16] + ciphertext)
//
// Versioned (v2, emitted only when compression is enabled):
//
//	"v2:" + base64(flag[1] + salt[32] + nonce[16] + tag[16] + ciphertext)
//
// Flag byte values:
//
//	0x00 = no compression
//	0x01 = zstd-compressed plaintext
//
// The "v2:" text prefix is unambiguous: standard base64 never contains
// a colon, so a legacy blob can never be mistaken for a v2 one. A
// version byte inside the payload would not have that property, since
// the first decoded byte of a legacy envelope is random salt.
const (
	flagNoCompression byte = 0x00
	flagZstd          byte = 0x01

	v2Prefix = "v2:"
)

// encodeEnvelope packs the four segments in fixed order and base64
// encodes them (legacy format).
func encodeEnvelope(salt, nonce, tag, ciphertext []byte) string {
	raw := make([]byte, 0, headerSize+len(ciphertext))
	raw = append(raw, salt...)
	raw = append(raw, nonce...)
	raw = append(raw, tag...)
	raw = append(raw, ciphertext...)
	return base64.StdEncoding.EncodeToString(raw)
}

// encodeEnvelopeV2 packs a versioned envelope with a leading flag byte.
func encodeEnvelopeV2(flag byte, salt, nonce, tag, ciphertext []byte) string {
	raw := make([]byte, 0, 1+headerSize+len(ciphertext))
	raw = append(raw, flag)
	raw = append(raw, salt...)
	raw = append(raw, nonce...)
	raw = append(raw, tag...)
	raw = append(raw, ciphertext...)
	return v2Prefix + base64.StdEncoding.EncodeToString(raw)
}

// decodeEnvelope reverses either encoding. It returns the compression
// flag (always flagNoCompression for legacy envelopes) and the four
// segments sliced by their fixed offsets; all bytes past the header are
// ciphertext.
func decodeEnvelope(envelope string) (flag byte, salt, nonce, tag, ciphertext []byte, err error) {
	payload, versioned := strings.CutPrefix(envelope, v2Prefix)

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return 0, nil, nil, nil, nil, ErrMalformedEnvelope
	}

	if versioned {
		if len(raw) < 1+headerSize {
			return 0, nil, nil, nil, nil, ErrMalformedEnvelope
		}
		flag = raw[0]
		raw = raw[1:]
	} else if len(raw) < headerSize {
		return 0, nil, nil, nil, nil, ErrMalformedEnvelope
	}

	salt = raw[:saltSize]
	nonce = raw[saltSize : saltSize+nonceSize]
	tag = raw[saltSize+nonceSize : headerSize]
	ciphertext = raw[headerSize:]
	return flag, salt, nonce, tag, ciphertext, nil
}
