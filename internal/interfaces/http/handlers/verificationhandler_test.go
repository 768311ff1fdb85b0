package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	certdto "github.com/seyidturgut/certifix.ai-sub001/internal/application/certificate/dto"
	certuc "github.com/seyidturgut/certifix.ai-sub001/internal/application/certificate/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/handlers/testutil"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockVerifyCertificateUC struct {
	result *certuc.VerifyCertificateResult
	err    error
	token  string
}

func (m *mockVerifyCertificateUC) Execute(ctx context.Context, id, token string) (*certuc.VerifyCertificateResult, error) {
	m.token = token
	return m.result, m.err
}

type mockRenderUC struct {
	png []byte
	pdf []byte
	err error
}

func (m *mockRenderUC) QRCode(ctx context.Context, id string) ([]byte, error) {
	return m.png, m.err
}

func (m *mockRenderUC) PDF(ctx context.Context, id, token string) ([]byte, error) {
	return m.pdf, m.err
}

// =====================================================================
// TestVerificationHandler
// =====================================================================

func TestVerificationHandler_Verify_PublicView(t *testing.T) {
	verify := &mockVerifyCertificateUC{result: &certuc.VerifyCertificateResult{
		Public: &certdto.PublicCertificateDTO{ID: "cert-1", RecipientName: "Ayşe Yılmaz", Status: "active"},
	}}
	handler := NewVerificationHandler(verify, &mockRenderUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/verify/cert-1", nil)
	testutil.SetURLParam(c, "id", "cert-1")

	handler.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, verify.token)
	assert.NotContains(t, w.Body.String(), "design_json")
	assert.NotContains(t, w.Body.String(), "share_token")
}

func TestVerificationHandler_Verify_WithToken(t *testing.T) {
	full := createTestCertificateDTO()
	full.DesignJSON = json.RawMessage(`{"elements":[]}`)
	verify := &mockVerifyCertificateUC{result: &certuc.VerifyCertificateResult{Full: full}}
	handler := NewVerificationHandler(verify, &mockRenderUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/verify/cert-1", nil)
	testutil.SetURLParam(c, "id", "cert-1")
	testutil.SetQueryParams(c, map[string]string{"token": "tok"})

	handler.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok", verify.token)
	assert.Contains(t, w.Body.String(), "design_json")
}

func TestVerificationHandler_QRCode(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	handler := NewVerificationHandler(&mockVerifyCertificateUC{}, &mockRenderUC{png: png}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/verify/cert-1/qr", nil)
	testutil.SetURLParam(c, "id", "cert-1")

	handler.QRCode(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, png, w.Body.Bytes())
}

func TestVerificationHandler_PDF_Forbidden(t *testing.T) {
	render := &mockRenderUC{err: errors.NewForbiddenError("invalid share token")}
	handler := NewVerificationHandler(&mockVerifyCertificateUC{}, render, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/verify/cert-1/pdf", nil)
	testutil.SetURLParam(c, "id", "cert-1")

	handler.PDF(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerificationHandler_PDF_Attachment(t *testing.T) {
	render := &mockRenderUC{pdf: []byte("%PDF-1.3")}
	handler := NewVerificationHandler(&mockVerifyCertificateUC{}, render, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/verify/cert-1/pdf", nil)
	testutil.SetURLParam(c, "id", "cert-1")
	testutil.SetQueryParams(c, map[string]string{"token": "tok"})

	handler.PDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "certificate-cert-1.pdf")
}
