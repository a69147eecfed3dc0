package stego

import "io"

// frameWriter fills a pre-allocated byte slice with big-endian fields.
// Engines size the slice exactly before framing a chunk or segment, so a
// write past the end is a framing bug: it latches io.ErrShortWrite and
// turns every subsequent write into a no-op, mirroring cursor on the read
// side.
type frameWriter struct {
	b   []byte
	n   int   // current write position
	err error // first error encountered
}

func newFrameWriter(size int) *frameWriter { return &frameWriter{b: make([]byte, size)} }

// WriteBytes appends p to the frame.
func (w *frameWriter) WriteBytes(p []byte) {
	if w.err != nil {
		return
	}
	if len(p) > len(w.b)-w.n {
		w.setError(io.ErrShortWrite)
		return
	}
	w.n += copy(w.b[w.n:], p)
}

// WriteUint16 appends a big-endian uint16.
func (w *frameWriter) WriteUint16(v uint16) {
	if w.err != nil {
		return
	}
	if len(w.b)-w.n < 2 {
		w.setError(io.ErrShortWrite)
		return
	}
	Order.PutUint16(w.b[w.n:], v)
	w.n += 2
}

// WriteUint32 appends a big-endian uint32.
func (w *frameWriter) WriteUint32(v uint32) {
	if w.err != nil {
		return
	}
	if len(w.b)-w.n < 4 {
		w.setError(io.ErrShortWrite)
		return
	}
	Order.PutUint32(w.b[w.n:], v)
	w.n += 4
}

// setError records the first non-nil error.
func (w *frameWriter) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Result returns the framed bytes and the latched error state. A frame
// that was not filled to its declared size is also an error.
func (w *frameWriter) Result() ([]byte, error) {
	if w.err == nil && w.n != len(w.b) {
		w.setError(io.ErrShortWrite)
	}
	return w.b[:w.n], w.err
}
