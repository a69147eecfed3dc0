package stego

import "encoding/base64"

// Codec is the reversible byte-to-text transform applied to every payload
// before it enters a carrier. Keeping the payload in a restricted text
// alphabet guarantees the embedded region never contains bytes that a
// reader could mistake for format structure (a stray trailer marker, a
// premature segment boundary).
type Codec interface {
	// EncodedLen returns the encoded size of n payload bytes.
	EncodedLen(n int) int

	// Encode transcodes payload into the text alphabet.
	Encode(payload []byte) []byte

	// Decode reverses Encode. It fails on input that is not valid output
	// of Encode: wrong alphabet, truncated padding, stray bytes.
	Decode(encoded []byte) ([]byte, error)
}

// Base64Codec implements Codec with standard padded base64. Its alphabet
// contains no whitespace and no bytes meaningful to any supported
// container format.
type Base64Codec struct{}

var _ Codec = Base64Codec{}

// EncodedLen implements Codec.
func (Base64Codec) EncodedLen(n int) int { return base64.StdEncoding.EncodedLen(n) }

// Encode implements Codec.
func (Base64Codec) Encode(payload []byte) []byte {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(payload)))
	base64.StdEncoding.Encode(out, payload)
	return out
}

// Decode implements Codec.
func (Base64Codec) Decode(encoded []byte) ([]byte, error) {
	out := make([]byte, base64.StdEncoding.DecodedLen(len(encoded)))
	n, err := base64.StdEncoding.Decode(out, encoded)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}
