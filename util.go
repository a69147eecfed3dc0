package stego

import "encoding/binary"

// Order is the byte order of every multi-byte field this package frames
// or parses. PNG chunk headers and JPEG segment lengths are both
// big-endian by their specifications.
var Order = binary.BigEndian

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
