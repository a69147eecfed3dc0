package stego

import (
	"fmt"
	"slices"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"
)

// Router maps a byte buffer to the one engine capable of processing it.
// Engines are tried in registration order; should two signatures ever
// overlap, the first-registered engine wins. The registry is built once
// at startup and read-only afterwards, so lookups need no locking.
type Router struct {
	engines []Engine
	index   *xsync.Map[string, Engine] // keyed by lower-cased name and extension
}

// NewEmptyRouter returns a router with no engines registered. Tests use
// it to exercise detection against an arbitrary engine subset.
func NewEmptyRouter() *Router {
	return &Router{index: xsync.NewMap[string, Engine]()}
}

// NewRouter returns a router loaded with every built-in engine.
func NewRouter() *Router {
	r := NewEmptyRouter()
	r.Register(NewPDFEngine())
	r.Register(NewPNGEngine())
	r.Register(NewJPEGEngine())
	return r
}

// Register appends an engine to the ordered registry and indexes it by
// format name and extension for Lookup. First registration of a name wins.
func (r *Router) Register(e Engine) {
	r.engines = append(r.engines, e)
	r.index.LoadOrStore(strings.ToLower(e.Name()), e)
	r.index.LoadOrStore(strings.ToLower(strings.TrimPrefix(e.Ext(), ".")), e)
}

// Detect returns the first registered engine whose signature matches
// data, or ErrUnsupportedFormat. It is deterministic and has no side
// effects.
func (r *Router) Detect(data []byte) (Engine, error) {
	for _, e := range r.engines {
		if e.Signature().Matches(data) {
			return e, nil
		}
	}
	return nil, ErrUnsupportedFormat
}

// Lookup resolves an engine by format name or file extension,
// case-insensitively and with or without a leading dot.
func (r *Router) Lookup(name string) (Engine, error) {
	key := strings.ToLower(strings.TrimPrefix(name, "."))
	if e, ok := r.index.Load(key); ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// Engines returns the registered engines in registration order.
func (r *Router) Engines() []Engine { return slices.Clone(r.engines) }
