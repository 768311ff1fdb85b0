package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

var (
	colorPrimary   = [3]int{30, 58, 95}
	colorTextDark  = [3]int{44, 62, 80}
	colorTextMuted = [3]int{127, 140, 141}
	colorValid     = [3]int{46, 204, 113}
	colorRevoked   = [3]int{231, 76, 60}
)

// Verification is the data printed on a verification document.
type Verification struct {
	CertificateID string
	RecipientName string
	ProgramName   string
	GroupName     string
	IssueDate     time.Time
	Revoked       bool
	VerifyURL     string
}

type PDFGenerator struct {
	qrSize int
}

func NewPDFGenerator(qrSize int) *PDFGenerator {
	return &PDFGenerator{qrSize: qrSize}
}

// Generate renders a one page A4 document with the certificate details and
// a QR code pointing at the verification URL.
func (g *PDFGenerator) Generate(v Verification) ([]byte, error) {
	qr, err := QRCode(v.VerifyURL, g.qrSize)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetTitle("Certificate verification", true)
	// core fonts are cp1252; characters outside it degrade, they do not fail
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()

	pdf.SetFillColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.Rect(0, 0, pageWidth, 8, "F")

	pdf.SetY(30)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.CellFormat(0, 12, "Certificate Verification", "", 1, "C", false, 0, "")

	status, color := "VALID", colorValid
	if v.Revoked {
		status, color = "REVOKED", colorRevoked
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(color[0], color[1], color[2])
	pdf.CellFormat(0, 10, status, "", 1, "C", false, 0, "")

	pdf.Ln(8)
	rows := [][2]string{
		{"Recipient", v.RecipientName},
		{"Program", v.ProgramName},
		{"Training", v.GroupName},
		{"Issue date", v.IssueDate.Format("2006-01-02")},
		{"Certificate ID", v.CertificateID},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(colorTextMuted[0], colorTextMuted[1], colorTextMuted[2])
		pdf.CellFormat(45, 9, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(colorTextDark[0], colorTextDark[1], colorTextDark[2])
		pdf.CellFormat(0, 9, tr(row[1]), "", 1, "L", false, 0, "")
	}

	qrName := "qr-" + v.CertificateID
	pdf.RegisterImageOptionsReader(qrName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qr))
	side := 60.0
	pdf.ImageOptions(qrName, (pageWidth-side)/2, pdf.GetY()+12, side, side, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetY(pdf.GetY() + 12 + side + 6)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(colorTextMuted[0], colorTextMuted[1], colorTextMuted[2])
	pdf.CellFormat(0, 6, v.VerifyURL, "", 1, "C", false, 0, v.VerifyURL)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("PDF render error: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output error: %w", err)
	}
	return buf.Bytes(), nil
}
