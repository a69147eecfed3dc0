package stego

import "fmt"

// JPEG markers. A marker is 0xFF followed by a type byte; most segments
// then carry a big-endian 16-bit length that counts the length field
// itself but not the marker.
const (
	jpegSOI      = 0xFFD8 // start of image, always first
	jpegEOI      = 0xFFD9 // end of image
	jpegSOS      = 0xFFDA // start of scan, entropy-coded data follows
	jpegAPP13    = 0xFFED // application segment carrying the payload
	jpegRSTFirst = 0xFFD0
	jpegRSTLast  = 0xFFD7
)

var jpegMagic = []byte{0xFF, 0xD8, 0xFF}

// jpegMaxSegmentData is the largest data field an application segment can
// declare: the 16-bit length counts its own two bytes.
const jpegMaxSegmentData = 0xFFFF - 2

// JPEGEngine hides payloads in an APP13 application segment inserted
// right after the SOI marker. Application segments exist for exactly this
// kind of reader-ignored metadata (EXIF, XMP and Adobe blocks all use
// them), so decoders skip the payload without complaint.
type JPEGEngine struct {
	codec Codec
}

// NewJPEGEngine returns a JPEG engine using the base64 codec.
func NewJPEGEngine() *JPEGEngine { return &JPEGEngine{codec: Base64Codec{}} }

// Signature implements Engine. The third byte is the 0xFF opening the
// first real marker, which weeds out files that merely start with SOI.
func (e *JPEGEngine) Signature() Signature { return Signature{Magic: jpegMagic} }

// Name implements Engine.
func (e *JPEGEngine) Name() string { return "JPEG" }

// Ext implements Engine.
func (e *JPEGEngine) Ext() string { return ".jpg" }

// findPayloadSegment walks the marker sequence from SOI until the scan
// data begins and returns the data field of the first APP13 segment. The
// found return distinguishes "absent" from the error cases.
func (e *JPEGEngine) findPayloadSegment(source []byte) (data []byte, found bool, err error) {
	c := newCursor(source)
	if c.Uint16() != jpegSOI || c.Err() != nil {
		return nil, false, fmt.Errorf("%w: missing SOI marker", ErrJPEGBadStructure)
	}
	for c.Remaining() >= 2 {
		start := c.Pos()
		marker := c.Uint16()
		if marker>>8 != 0xFF {
			// Not a marker: we have run into entropy-coded data.
			return nil, false, nil
		}
		if marker == jpegSOS || marker == jpegEOI {
			return nil, false, nil
		}
		// Standalone markers carry no length field.
		if marker == jpegSOI || (marker >= jpegRSTFirst && marker <= jpegRSTLast) {
			continue
		}
		length := int(c.Uint16())
		if c.Err() != nil || length < 2 {
			return nil, false, fmt.Errorf("%w: bad segment length at offset %d", ErrJPEGBadStructure, start)
		}
		body := c.Take(length - 2)
		if c.Err() != nil {
			return nil, false, fmt.Errorf("%w: segment at offset %d overruns the buffer", ErrJPEGBadStructure, start)
		}
		if marker == jpegAPP13 {
			return body, true, nil
		}
	}
	return nil, false, nil
}

// Embed inserts an APP13 segment carrying the encoded payload directly
// after the SOI marker. A JPEG that already carries a payload segment is
// rejected: the format offers no unambiguous slot for a second one.
func (e *JPEGEngine) Embed(source, payload []byte) ([]byte, error) {
	_, found, err := e.findPayloadSegment(source)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, ErrJPEGAlreadyEmbedded
	}
	encoded := e.codec.Encode(payload)
	if len(encoded) > jpegMaxSegmentData {
		return nil, fmt.Errorf("%w: %d encoded bytes, limit %d", ErrJPEGPayloadTooLarge, len(encoded), jpegMaxSegmentData)
	}

	w := newFrameWriter(4 + len(encoded))
	w.WriteUint16(jpegAPP13)
	w.WriteUint16(uint16(len(encoded) + 2))
	w.WriteBytes(encoded)
	segment, err := w.Result()
	if err != nil {
		panic("stego: JPEG segment framing out of step: " + err.Error())
	}

	const soiLen = 2
	out := make([]byte, 0, len(source)+len(segment))
	out = append(out, source[:soiLen]...)
	out = append(out, segment...)
	out = append(out, source[soiLen:]...)
	return out, nil
}

// Extract decodes the data field of the first APP13 segment.
func (e *JPEGEngine) Extract(source []byte) ([]byte, error) {
	data, found, err := e.findPayloadSegment(source)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrJPEGNoHiddenData
	}
	payload, err := e.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJPEGCorruptedData, err)
	}
	return payload, nil
}
