package dto

import (
	"encoding/json"
	"time"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
)

const dateLayout = "2006-01-02"

// CertificateDTO is the full record, returned to the owner and to holders
// of the share token.
type CertificateDTO struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	RecipientName  string          `json:"recipient_name"`
	RecipientEmail *string         `json:"recipient_email,omitempty"`
	ProgramName    string          `json:"program_name"`
	IssueDate      string          `json:"issue_date"`
	DesignJSON     json.RawMessage `json:"design_json,omitempty"`
	Orientation    string          `json:"orientation"`
	PreviewImage   *string         `json:"preview_image,omitempty"`
	GroupName      string          `json:"group_name"`
	Status         string          `json:"status"`
	ShareToken     string          `json:"share_token,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PublicCertificateDTO is what anyone can see on the verification page.
type PublicCertificateDTO struct {
	ID            string `json:"id"`
	RecipientName string `json:"recipient_name"`
	ProgramName   string `json:"program_name"`
	IssueDate     string `json:"issue_date"`
	GroupName     string `json:"group_name"`
	Status        string `json:"status"`
}

// IssueResultDTO is returned for every created certificate.
type IssueResultDTO struct {
	ID         string `json:"id"`
	ShareToken string `json:"share_token"`
}

type BulkIssueResultDTO struct {
	Certificates []IssueResultDTO `json:"certificates"`
	Count        int              `json:"count"`
}

// ToCertificateDTO includes the share token only when withToken is set.
func ToCertificateDTO(c *certificate.Certificate, withToken bool) *CertificateDTO {
	if c == nil {
		return nil
	}
	out := &CertificateDTO{
		ID:             c.ID(),
		UserID:         c.UserID(),
		RecipientName:  c.RecipientName(),
		RecipientEmail: c.RecipientEmail(),
		ProgramName:    c.ProgramName(),
		IssueDate:      c.IssueDate().Format(dateLayout),
		Orientation:    string(c.Orientation()),
		PreviewImage:   c.PreviewImage(),
		GroupName:      c.GroupName(),
		Status:         string(c.Status()),
		CreatedAt:      c.CreatedAt(),
	}
	if raw := c.DesignJSON(); len(raw) > 0 && json.Valid(raw) {
		out.DesignJSON = json.RawMessage(raw)
	}
	if withToken {
		out.ShareToken = c.ShareToken()
	}
	return out
}

func ToCertificateDTOList(list []*certificate.Certificate) []*CertificateDTO {
	out := make([]*CertificateDTO, 0, len(list))
	for _, c := range list {
		out = append(out, ToCertificateDTO(c, true))
	}
	return out
}

func ToPublicCertificateDTO(c *certificate.Certificate) *PublicCertificateDTO {
	if c == nil {
		return nil
	}
	return &PublicCertificateDTO{
		ID:            c.ID(),
		RecipientName: c.RecipientName(),
		ProgramName:   c.ProgramName(),
		IssueDate:     c.IssueDate().Format(dateLayout),
		GroupName:     c.GroupName(),
		Status:        string(c.Status()),
	}
}
