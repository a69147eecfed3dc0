package stego

import "io"

// cursor walks a byte slice sequentially, decoding big-endian fields.
// It tracks the first error encountered; once latched, every subsequent
// read is a no-op returning zero values, so a caller can batch a run of
// reads and check Err once at the end.
type cursor struct {
	b   []byte
	n   int    // current read position
	err error  // first error encountered
}

func newCursor(b []byte) *cursor { return &cursor{b: b} }

// Take returns the next n bytes without copying and advances the cursor.
// Reading past the end latches io.ErrUnexpectedEOF and returns nil.
func (c *cursor) Take(n int) []byte {
	if c.err != nil {
		return nil
	}
	if n < 0 || n > len(c.b)-c.n {
		c.setError(io.ErrUnexpectedEOF)
		return nil
	}
	out := c.b[c.n : c.n+n]
	c.n += n
	return out
}

// Skip advances the cursor by n bytes.
func (c *cursor) Skip(n int) { c.Take(n) }

// Uint16 reads a big-endian uint16.
func (c *cursor) Uint16() uint16 {
	b := c.Take(2)
	if b == nil {
		return 0
	}
	return Order.Uint16(b)
}

// Uint32 reads a big-endian uint32.
func (c *cursor) Uint32() uint32 {
	b := c.Take(4)
	if b == nil {
		return 0
	}
	return Order.Uint32(b)
}

// Pos returns the current read position.
func (c *cursor) Pos() int { return c.n }

// Remaining returns the number of unread bytes.
func (c *cursor) Remaining() int {
	if left := len(c.b) - c.n; left > 0 {
		return left
	}
	return 0
}

// Err returns the latched error, if any.
func (c *cursor) Err() error { return c.err }

// setError records the first non-nil error.
func (c *cursor) setError(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}
