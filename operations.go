package stego

// EmbedResult summarizes a successful embed operation. It is produced
// fresh per call and never retained by the package.
type EmbedResult struct {
	SourceSize  int
	PayloadSize int
	OutputSize  int
	Engine      string
}

// ExtractResult summarizes a successful extract operation.
type ExtractResult struct {
	SourceSize  int
	PayloadSize int
	Engine      string
}

// Operations is the single entry point used by callers: it routes a
// source buffer to an engine, invokes it, and packages size metadata. It
// adds no failure modes of its own; engine and router errors propagate
// unchanged. An Operations value holds only its immutable router and is
// safe for concurrent use.
type Operations struct {
	router *Router
}

// NewOperations wraps a router. The router's registry must be complete
// before the first call; Operations never registers engines itself.
func NewOperations(r *Router) *Operations { return &Operations{router: r} }

// Embed detects the carrier's engine and hides payload inside source.
func (o *Operations) Embed(source, payload []byte) ([]byte, *EmbedResult, error) {
	engine, err := o.router.Detect(source)
	if err != nil {
		return nil, nil, err
	}
	return o.EmbedWith(engine, source, payload)
}

// EmbedWith hides payload inside source using an explicitly chosen
// engine, bypassing detection.
func (o *Operations) EmbedWith(engine Engine, source, payload []byte) ([]byte, *EmbedResult, error) {
	out, err := engine.Embed(source, payload)
	if err != nil {
		return nil, nil, err
	}
	return out, &EmbedResult{
		SourceSize:  len(source),
		PayloadSize: len(payload),
		OutputSize:  len(out),
		Engine:      engine.Name(),
	}, nil
}

// Extract detects the carrier's engine and recovers the hidden payload.
func (o *Operations) Extract(source []byte) ([]byte, *ExtractResult, error) {
	engine, err := o.router.Detect(source)
	if err != nil {
		return nil, nil, err
	}
	return o.ExtractWith(engine, source)
}

// ExtractWith recovers the hidden payload using an explicitly chosen
// engine, bypassing detection.
func (o *Operations) ExtractWith(engine Engine, source []byte) ([]byte, *ExtractResult, error) {
	payload, err := engine.Extract(source)
	if err != nil {
		return nil, nil, err
	}
	return payload, &ExtractResult{
		SourceSize:  len(source),
		PayloadSize: len(payload),
		Engine:      engine.Name(),
	}, nil
}

// defaultOps serves the package-level convenience functions. Its router
// is built once and never mutated afterwards.
var defaultOps = NewOperations(NewRouter())

// Embed hides payload inside source using the default router.
func Embed(source, payload []byte) ([]byte, *EmbedResult, error) {
	return defaultOps.Embed(source, payload)
}

// Extract recovers a hidden payload from source using the default router.
func Extract(source []byte) ([]byte, *ExtractResult, error) {
	return defaultOps.Extract(source)
}
