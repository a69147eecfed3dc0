// Package stego hides arbitrary binary payloads inside carrier files of
// known container formats, and recovers them byte-for-byte later. Each
// supported format exploits a region its conforming readers are required
// to ignore: bytes after the final PDF trailer marker, a custom ancillary
// PNG chunk, or a JPEG application segment. The carrier stays valid and
// renders unchanged; the payload survives because it is transcoded to a
// text alphabet before insertion.
//
// The package deliberately trades detectability for capacity and
// simplicity: the embedded region is plainly visible to anyone inspecting
// the file bytes, and no encryption is applied to the payload.
package stego

import "bytes"

// Signature identifies a container format by a fixed byte pattern at a
// fixed offset. All built-in formats declare their pattern at offset 0.
type Signature struct {
	Magic  []byte
	Offset int
}

// Matches reports whether data carries the signature. A buffer too short
// to contain the pattern at its declared offset never matches.
func (s Signature) Matches(data []byte) bool {
	if s.Offset < 0 || len(s.Magic) == 0 {
		return false
	}
	end := s.Offset + len(s.Magic)
	if end > len(data) {
		return false
	}
	return bytes.Equal(data[s.Offset:end], s.Magic)
}

// Engine is a stateless embed/extract strategy for one container format.
// Implementations hold no mutable state: every call is pure with respect
// to its inputs, so a single Engine value is safe for concurrent use.
type Engine interface {
	// Signature returns the byte pattern that identifies the format.
	Signature() Signature

	// Name returns the human-readable format name, e.g. "PDF".
	Name() string

	// Ext returns the canonical file extension, e.g. ".pdf".
	Ext() string

	// Embed hides payload inside source and returns the new carrier
	// bytes. The source slice is never modified.
	Embed(source, payload []byte) ([]byte, error)

	// Extract recovers a previously embedded payload from source.
	Extract(source []byte) ([]byte, error)
}
