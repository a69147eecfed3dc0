package stego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngine lets router tests control signatures without dragging in a
// real format.
type fakeEngine struct {
	sig  Signature
	name string
	ext  string
}

func (f *fakeEngine) Signature() Signature { return f.sig }
func (f *fakeEngine) Name() string         { return f.name }
func (f *fakeEngine) Ext() string          { return f.ext }
func (f *fakeEngine) Embed(source, payload []byte) ([]byte, error) {
	return source, nil
}
func (f *fakeEngine) Extract(source []byte) ([]byte, error) { return nil, nil }

func TestRouterDetect(t *testing.T) {
	router := NewRouter()

	t.Run("PDF", func(t *testing.T) {
		engine, err := router.Detect([]byte("%PDF-1.4\nsome content"))
		require.NoError(t, err)
		assert.Equal(t, "PDF", engine.Name())
	})

	t.Run("PNG", func(t *testing.T) {
		engine, err := router.Detect(append(append([]byte{}, pngMagic...), 0x00))
		require.NoError(t, err)
		assert.Equal(t, "PNG", engine.Name())
	})

	t.Run("JPEG", func(t *testing.T) {
		engine, err := router.Detect([]byte{0xFF, 0xD8, 0xFF, 0xE0})
		require.NoError(t, err)
		assert.Equal(t, "JPEG", engine.Name())
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		for name, data := range map[string][]byte{
			"Empty":       {},
			"ThreeBytes":  {0x17, 0xA2, 0x9C},
			"PlainText":   []byte("unknown file format"),
			"ShortPrefix": []byte("%P"),
		} {
			t.Run(name, func(t *testing.T) {
				_, err := router.Detect(data)
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
			})
		}
	})
}

func TestRouterRegistrationOrder(t *testing.T) {
	// Two engines answering the same signature: the first registered wins.
	sig := Signature{Magic: []byte("XX")}
	first := &fakeEngine{sig: sig, name: "First", ext: ".fst"}
	second := &fakeEngine{sig: sig, name: "Second", ext: ".snd"}

	router := NewEmptyRouter()
	router.Register(first)
	router.Register(second)

	engine, err := router.Detect([]byte("XX data"))
	require.NoError(t, err)
	assert.Equal(t, "First", engine.Name())
}

func TestRouterLookup(t *testing.T) {
	router := NewRouter()

	for _, key := range []string{"PDF", "pdf", ".pdf", "Pdf"} {
		engine, err := router.Lookup(key)
		require.NoError(t, err, "lookup %q", key)
		assert.Equal(t, "PDF", engine.Name())
	}

	engine, err := router.Lookup("jpg")
	require.NoError(t, err)
	assert.Equal(t, "JPEG", engine.Name())

	_, err = router.Lookup("gif")
	assert.ErrorIs(t, err, ErrUnknownEngine)
}

func TestSignatureMatches(t *testing.T) {
	sig := Signature{Magic: []byte("AB"), Offset: 2}

	assert.True(t, sig.Matches([]byte("xxAByy")))
	assert.False(t, sig.Matches([]byte("ABxxyy")), "pattern at the wrong offset must not match")
	assert.False(t, sig.Matches([]byte("xxA")), "buffer shorter than offset+magic must not match")
	assert.False(t, sig.Matches(nil))
}
