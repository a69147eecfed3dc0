package stego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationsEmbed(t *testing.T) {
	ops := NewOperations(NewRouter())
	source := minimalPDF()
	payload := []byte("secret data")

	out, res, err := ops.Embed(source, payload)
	require.NoError(t, err)

	assert.Equal(t, len(source), res.SourceSize)
	assert.Equal(t, len(payload), res.PayloadSize)
	assert.Equal(t, len(out), res.OutputSize)
	assert.Greater(t, res.OutputSize, res.SourceSize)
	assert.Equal(t, "PDF", res.Engine)
}

func TestOperationsExtract(t *testing.T) {
	ops := NewOperations(NewRouter())
	payload := []byte("secret data")
	embedded, _, err := ops.Embed(minimalPDF(), payload)
	require.NoError(t, err)

	extracted, res, err := ops.Extract(embedded)
	require.NoError(t, err)

	assert.Equal(t, payload, extracted)
	assert.Equal(t, len(embedded), res.SourceSize)
	assert.Equal(t, len(payload), res.PayloadSize)
	assert.Equal(t, "PDF", res.Engine)
}

func TestOperationsUnsupportedFormat(t *testing.T) {
	ops := NewOperations(NewRouter())

	_, _, err := ops.Embed([]byte{0x01, 0x02, 0x03}, []byte("payload"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, _, err = ops.Extract(nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestOperationsErrorsPropagateUnchanged(t *testing.T) {
	ops := NewOperations(NewRouter())

	// A detected PDF without a trailer: the engine error surfaces as-is.
	_, _, err := ops.Embed([]byte("%PDF-1.4\nno trailer"), []byte("payload"))
	assert.ErrorIs(t, err, ErrPDFNoTrailer)
}

// TestRoundTripAllEngines drives the full detect-embed-extract cycle for
// every built-in engine over a spread of payloads.
func TestRoundTripAllEngines(t *testing.T) {
	fullRange := make([]byte, 256)
	for i := range fullRange {
		fullRange[i] = byte(i)
	}

	carriers := map[string][]byte{
		"PDF":  minimalPDF(),
		"PNG":  minimalPNG(),
		"JPEG": minimalJPEG(),
	}
	payloads := map[string][]byte{
		"Text":      []byte("test payload"),
		"SingleNul": {0x00},
		"FullRange": fullRange,
	}

	for carrierName, carrier := range carriers {
		for payloadName, payload := range payloads {
			t.Run(carrierName+"/"+payloadName, func(t *testing.T) {
				out, embedRes, err := Embed(carrier, payload)
				require.NoError(t, err)
				assert.Equal(t, carrierName, embedRes.Engine)

				// Embedding must not disturb the format signature.
				detected, err := defaultOps.router.Detect(out)
				require.NoError(t, err)
				assert.Equal(t, carrierName, detected.Name())

				extracted, extractRes, err := Extract(out)
				require.NoError(t, err)
				assert.Equal(t, payload, extracted)
				assert.Equal(t, carrierName, extractRes.Engine)
			})
		}
	}
}

func TestEmbedWithForcedEngine(t *testing.T) {
	router := NewRouter()
	ops := NewOperations(router)
	engine, err := router.Lookup("png")
	require.NoError(t, err)

	out, res, err := ops.EmbedWith(engine, minimalPNG(), []byte("forced"))
	require.NoError(t, err)
	assert.Equal(t, "PNG", res.Engine)

	extracted, _, err := ops.ExtractWith(engine, out)
	require.NoError(t, err)
	assert.Equal(t, []byte("forced"), extracted)
}
