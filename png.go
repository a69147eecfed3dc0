package stego

import (
	"bytes"
	"fmt"
	"hash/crc32"
)

// pngMagic is the 8-byte PNG file signature.
var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// pngPayloadType is the chunk type carrying the payload. Its letter cases
// follow the PNG naming rules: lower-case first letter marks the chunk
// ancillary (decoders must skip it if unrecognized), lower-case second
// letter marks it private, upper-case third letter satisfies the reserved
// bit, lower-case fourth letter marks it safe to copy.
var pngPayloadType = []byte("stGo")

var pngEnd = []byte("IEND")

// pngChunkOverhead is the framing around a chunk's data field: 4-byte
// length, 4-byte type, 4-byte CRC.
const pngChunkOverhead = 12

// PNGEngine hides payloads in a custom ancillary chunk inserted before
// the IEND terminator. The decoded image is pixel-for-pixel unchanged.
//
// Each embed inserts one more payload chunk; extraction returns the first
// one in file order. Callers embedding several payloads into the same
// carrier must track that ordering themselves.
type PNGEngine struct {
	codec Codec
}

// NewPNGEngine returns a PNG engine using the base64 codec.
func NewPNGEngine() *PNGEngine { return &PNGEngine{codec: Base64Codec{}} }

// Signature implements Engine.
func (e *PNGEngine) Signature() Signature { return Signature{Magic: pngMagic} }

// Name implements Engine.
func (e *PNGEngine) Name() string { return "PNG" }

// Ext implements Engine.
func (e *PNGEngine) Ext() string { return ".png" }

// pngChunkCRC computes the CRC-32 (IEEE polynomial, as the PNG
// specification requires) over the chunk type and data fields.
func pngChunkCRC(typ, data []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write(typ)
	h.Write(data)
	return h.Sum32()
}

// buildPNGChunk frames one chunk: big-endian data length, type, data,
// CRC over type and data.
func buildPNGChunk(typ, data []byte) []byte {
	w := newFrameWriter(pngChunkOverhead + len(data))
	w.WriteUint32(uint32(len(data)))
	w.WriteBytes(typ)
	w.WriteBytes(data)
	w.WriteUint32(pngChunkCRC(typ, data))
	chunk, err := w.Result()
	if err != nil {
		// The frame is sized from its own inputs two lines up.
		panic("stego: PNG chunk framing out of step: " + err.Error())
	}
	return chunk
}

// findEnd walks the chunk sequence and returns the byte offset at which
// the IEND chunk begins. Every declared chunk length is validated against
// the remaining buffer before it is skipped.
func (e *PNGEngine) findEnd(source []byte) (int, error) {
	c := newCursor(source)
	c.Skip(len(pngMagic))
	for {
		start := c.Pos()
		length := c.Uint32()
		typ := c.Take(4)
		if c.Err() != nil {
			return 0, fmt.Errorf("%w: no IEND terminator before offset %d", ErrPNGBadStructure, start)
		}
		if bytes.Equal(typ, pngEnd) {
			return start, nil
		}
		c.Skip(int(length) + 4) // data + CRC
		if c.Err() != nil {
			return 0, fmt.Errorf("%w: chunk %q at offset %d overruns the buffer", ErrPNGBadStructure, typ, start)
		}
	}
}

// Embed splices a payload chunk into the byte stream immediately before
// the IEND chunk. All other bytes are reproduced unmodified.
func (e *PNGEngine) Embed(source, payload []byte) ([]byte, error) {
	end, err := e.findEnd(source)
	if err != nil {
		return nil, err
	}
	chunk := buildPNGChunk(pngPayloadType, e.codec.Encode(payload))
	out := make([]byte, 0, len(source)+len(chunk))
	out = append(out, source[:end]...)
	out = append(out, chunk...)
	out = append(out, source[end:]...)
	return out, nil
}

// Extract walks the chunk sequence and decodes the data field of the
// first payload chunk. The stored CRC is verified before decoding.
func (e *PNGEngine) Extract(source []byte) ([]byte, error) {
	c := newCursor(source)
	c.Skip(len(pngMagic))
	for {
		start := c.Pos()
		length := c.Uint32()
		typ := c.Take(4)
		if c.Err() != nil {
			return nil, fmt.Errorf("%w: no IEND terminator before offset %d", ErrPNGBadStructure, start)
		}
		data := c.Take(int(length))
		stored := c.Uint32()
		if c.Err() != nil {
			return nil, fmt.Errorf("%w: chunk %q at offset %d overruns the buffer", ErrPNGBadStructure, typ, start)
		}
		switch {
		case bytes.Equal(typ, pngPayloadType):
			if stored != pngChunkCRC(typ, data) {
				return nil, fmt.Errorf("%w: chunk CRC mismatch at offset %d", ErrPNGCorruptedData, start)
			}
			payload, err := e.codec.Decode(data)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrPNGCorruptedData, err)
			}
			return payload, nil
		case bytes.Equal(typ, pngEnd):
			return nil, ErrPNGNoHiddenData
		}
	}
}
