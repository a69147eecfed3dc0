package stego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// minimalJPEG builds a marker sequence just large enough to walk: SOI, a
// JFIF APP0 segment, an SOS header and a couple of entropy-coded bytes
// before EOI.
func minimalJPEG() []byte {
	out := []byte{0xFF, 0xD8} // SOI
	app0 := []byte("JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
	out = append(out, 0xFF, 0xE0, 0x00, byte(len(app0)+2))
	out = append(out, app0...)
	out = append(out, 0xFF, 0xDA, 0x00, 0x02) // SOS, empty header
	out = append(out, 0x12, 0x34)             // entropy-coded data
	out = append(out, 0xFF, 0xD9)             // EOI
	return out
}

type JPEGEngineTestSuite struct {
	suite.Suite
	engine *JPEGEngine
}

func (s *JPEGEngineTestSuite) SetupTest() {
	s.engine = NewJPEGEngine()
}

func (s *JPEGEngineTestSuite) TestRoundTrip() {
	payload := []byte("hidden in plain metadata")

	embedded, err := s.engine.Embed(minimalJPEG(), payload)
	s.Require().NoError(err)

	extracted, err := s.engine.Extract(embedded)
	s.Require().NoError(err)
	s.Assert().Equal(payload, extracted)
}

func (s *JPEGEngineTestSuite) TestSegmentPlacedAfterSOI() {
	payload := []byte("x")
	embedded, err := s.engine.Embed(minimalJPEG(), payload)
	s.Require().NoError(err)

	encoded := Base64Codec{}.Encode(payload)
	s.Assert().Equal([]byte{0xFF, 0xD8, 0xFF, 0xED}, embedded[:4])
	s.Assert().Equal(uint16(len(encoded)+2), Order.Uint16(embedded[4:6]))
	s.Assert().Equal(minimalJPEG()[2:], embedded[6+len(encoded):])
}

func (s *JPEGEngineTestSuite) TestRoundTripEmptyPayload() {
	embedded, err := s.engine.Embed(minimalJPEG(), nil)
	s.Require().NoError(err)

	extracted, err := s.engine.Extract(embedded)
	s.Require().NoError(err)
	s.Assert().Empty(extracted)
}

func (s *JPEGEngineTestSuite) TestEmbedCollision() {
	embedded, err := s.engine.Embed(minimalJPEG(), []byte("first"))
	s.Require().NoError(err)

	_, err = s.engine.Embed(embedded, []byte("second"))
	s.Assert().ErrorIs(err, ErrJPEGAlreadyEmbedded)
}

func (s *JPEGEngineTestSuite) TestEmbedPayloadTooLarge() {
	// 50000 bytes encode to 66668, past the 16-bit segment limit.
	payload := make([]byte, 50000)
	_, err := s.engine.Embed(minimalJPEG(), payload)
	s.Assert().ErrorIs(err, ErrJPEGPayloadTooLarge)
}

func (s *JPEGEngineTestSuite) TestEmbedInvalidStructure() {
	s.T().Run("NoSOI", func(t *testing.T) {
		_, err := s.engine.Embed([]byte("definitely not a JPEG"), []byte("data"))
		assert.ErrorIs(t, err, ErrJPEGBadStructure)
	})

	s.T().Run("SegmentOverrunsBuffer", func(t *testing.T) {
		source := minimalJPEG()
		corrupted := append([]byte{}, source...)
		// Inflate the APP0 declared length past the buffer end.
		Order.PutUint16(corrupted[4:], 0x4000)
		_, err := s.engine.Embed(corrupted, []byte("data"))
		assert.ErrorIs(t, err, ErrJPEGBadStructure)
	})
}

func (s *JPEGEngineTestSuite) TestExtractNoHiddenData() {
	_, err := s.engine.Extract(minimalJPEG())
	s.Assert().ErrorIs(err, ErrJPEGNoHiddenData)
}

func (s *JPEGEngineTestSuite) TestExtractCorruptedData() {
	embedded, err := s.engine.Embed(minimalJPEG(), []byte("payload"))
	s.Require().NoError(err)

	// Replace a base64 byte in the segment data with one outside the
	// alphabet. The segment starts right after SOI: marker, length, data.
	corrupted := append([]byte{}, embedded...)
	corrupted[6] = '*'
	_, err = s.engine.Extract(corrupted)
	s.Assert().ErrorIs(err, ErrJPEGCorruptedData)
}

func (s *JPEGEngineTestSuite) TestSignaturePreserved() {
	embedded, err := s.engine.Embed(minimalJPEG(), []byte("payload"))
	s.Require().NoError(err)
	s.Assert().True(s.engine.Signature().Matches(embedded))
}

func TestJPEGEngine(t *testing.T) {
	suite.Run(t, new(JPEGEngineTestSuite))
}
