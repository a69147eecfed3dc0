package stego

import (
	"bytes"
	"fmt"
)

// pdfTrailer is the end-of-file marker. Conforming readers honor only the
// last occurrence, so anything placed after it is never parsed or
// rendered.
var pdfTrailer = []byte("%%EOF")

// PDFEngine hides payloads after the PDF trailer marker.
//
// A PDF may legitimately contain several %%EOF markers, one per
// incremental update; only the final one ends the document, which is why
// every search here runs from the end of the buffer.
//
// Re-embedding appends a second encoded payload after the first, and the
// combined tail no longer decodes: only the most recent embed on a fresh
// carrier is retrievable. Last write wins.
type PDFEngine struct {
	codec Codec
}

// NewPDFEngine returns a PDF engine using the base64 codec.
func NewPDFEngine() *PDFEngine { return &PDFEngine{codec: Base64Codec{}} }

// Signature implements Engine.
func (e *PDFEngine) Signature() Signature { return Signature{Magic: []byte("%PDF")} }

// Name implements Engine.
func (e *PDFEngine) Name() string { return "PDF" }

// Ext implements Engine.
func (e *PDFEngine) Ext() string { return ".pdf" }

// Embed appends a newline and the encoded payload after the source. The
// source bytes themselves are reproduced unmodified, trailer included, so
// detection on the output selects this engine again.
func (e *PDFEngine) Embed(source, payload []byte) ([]byte, error) {
	if bytes.LastIndex(source, pdfTrailer) < 0 {
		return nil, ErrPDFNoTrailer
	}
	encoded := e.codec.Encode(payload)
	out := make([]byte, 0, len(source)+1+len(encoded))
	out = append(out, source...)
	out = append(out, '\n')
	out = append(out, encoded...)
	return out, nil
}

// Extract decodes the bytes after the last trailer marker. Leading ASCII
// whitespace is skipped: the carrier may already have ended its trailer
// line with a newline before the embed appended another. The codec
// alphabet contains no whitespace, so the skip cannot eat payload bytes.
func (e *PDFEngine) Extract(source []byte) ([]byte, error) {
	pos := bytes.LastIndex(source, pdfTrailer)
	if pos < 0 {
		return nil, ErrPDFNoTrailer
	}
	tail := source[pos+len(pdfTrailer):]
	for len(tail) > 0 && isASCIISpace(tail[0]) {
		tail = tail[1:]
	}
	if len(tail) == 0 {
		return nil, ErrPDFNoHiddenData
	}
	payload, err := e.codec.Decode(tail)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFCorruptedData, err)
	}
	return payload, nil
}
