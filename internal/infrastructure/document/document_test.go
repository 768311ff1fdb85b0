package document

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRCode(t *testing.T) {
	png, err := QRCode("https://certifix.local/verify/abc", 0)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))

	_, err = QRCode("   ", 128)
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestPDFGenerator_Generate(t *testing.T) {
	g := NewPDFGenerator(128)

	for _, revoked := range []bool{false, true} {
		out, err := g.Generate(Verification{
			CertificateID: "cert-1",
			RecipientName: "Şükrü Öztürk",
			ProgramName:   "Go 101",
			GroupName:     "Go 101 - Ekim",
			IssueDate:     time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
			Revoked:       revoked,
			VerifyURL:     "https://certifix.local/verify/cert-1",
		})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
		assert.Greater(t, len(out), 1000)
	}
}

func TestPDFGenerator_RequiresURL(t *testing.T) {
	_, err := NewPDFGenerator(128).Generate(Verification{CertificateID: "x"})
	assert.ErrorIs(t, err, ErrEmptyContent)
}
