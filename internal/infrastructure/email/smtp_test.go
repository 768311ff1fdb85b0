package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateIssuedMessage(t *testing.T) {
	svc := NewSMTPEmailService(SMTPConfig{
		Host:        "localhost",
		Port:        1025,
		FromAddress: "noreply@certifix.local",
		FromName:    "Certifix",
	})

	msg := svc.certificateIssuedMessage(CertificateIssued{
		To:            "ada@example.com",
		RecipientName: "Ada <Lovelace>",
		ProgramName:   "Go 101",
		VerifyURL:     "https://certifix.local/verify/abc",
	})

	assert.Equal(t, []string{"ada@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Your certificate for Go 101"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	body := buf.String()
	assert.Contains(t, body, "https://certifix.local/verify/abc")
	assert.Contains(t, body, "Ada &lt;Lovelace&gt;")
}

func TestSendCertificateIssued_CancelledContext(t *testing.T) {
	svc := NewSMTPEmailService(SMTPConfig{Host: "localhost", Port: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.SendCertificateIssued(ctx, CertificateIssued{To: "a@b.c"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNoopEmailService(t *testing.T) {
	assert.NoError(t, NoopEmailService{}.SendCertificateIssued(context.Background(), CertificateIssued{}))
}
