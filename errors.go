package stego

import "errors"

var (
	// ErrUnsupportedFormat indicates that no registered engine's signature
	// matches the input buffer.
	ErrUnsupportedFormat = errors.New("stego: unsupported file format, no matching engine")

	// ErrUnknownEngine indicates a Lookup by a name or extension that no
	// registered engine answers to.
	ErrUnknownEngine = errors.New("stego: unknown engine name")

	// ErrPDFNoTrailer indicates a carrier without any %%EOF trailer
	// marker. Appending after the trailer is only safe on a file that has
	// one, so such a carrier is rejected outright.
	ErrPDFNoTrailer = errors.New("stego: invalid PDF, no %%EOF trailer marker")

	// ErrPDFNoHiddenData indicates a well-formed PDF with nothing after
	// its final trailer marker.
	ErrPDFNoHiddenData = errors.New("stego: no hidden data found in PDF")

	// ErrPDFCorruptedData indicates bytes after the trailer marker that
	// are not valid codec output.
	ErrPDFCorruptedData = errors.New("stego: corrupted hidden data in PDF")

	// ErrPNGBadStructure indicates a chunk sequence that cannot be walked:
	// a declared chunk length overruns the buffer, or the IEND terminator
	// is missing.
	ErrPNGBadStructure = errors.New("stego: invalid PNG, malformed chunk sequence")

	// ErrPNGNoHiddenData indicates a well-formed PNG with no payload chunk.
	ErrPNGNoHiddenData = errors.New("stego: no hidden data found in PNG")

	// ErrPNGCorruptedData indicates a payload chunk whose CRC does not
	// verify or whose data is not valid codec output.
	ErrPNGCorruptedData = errors.New("stego: corrupted hidden data in PNG")

	// ErrJPEGBadStructure indicates a segment sequence that cannot be
	// walked, or a file not starting with the SOI marker.
	ErrJPEGBadStructure = errors.New("stego: invalid JPEG, malformed segment sequence")

	// ErrJPEGNoHiddenData indicates a well-formed JPEG with no payload
	// segment.
	ErrJPEGNoHiddenData = errors.New("stego: no hidden data found in JPEG")

	// ErrJPEGCorruptedData indicates a payload segment whose data is not
	// valid codec output.
	ErrJPEGCorruptedData = errors.New("stego: corrupted hidden data in JPEG")

	// ErrJPEGAlreadyEmbedded indicates an embed into a JPEG that already
	// carries a payload segment. Unlike PNG, the JPEG layout gives the
	// second payload nowhere unambiguous to live, so re-embedding is
	// refused instead of silently shadowing the first payload.
	ErrJPEGAlreadyEmbedded = errors.New("stego: JPEG already contains an embedded payload")

	// ErrJPEGPayloadTooLarge indicates an encoded payload exceeding the
	// 16-bit length field a JPEG application segment can carry.
	ErrJPEGPayloadTooLarge = errors.New("stego: payload exceeds JPEG segment capacity")
)
