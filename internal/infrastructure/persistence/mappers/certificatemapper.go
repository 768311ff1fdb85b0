package mappers

import (
	"gorm.io/datatypes"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
)

func CertificateToEntity(m *models.CertificateModel) *certificate.Certificate {
	if m == nil {
		return nil
	}
	return certificate.ReconstructCertificate(
		certificate.Issue{
			ID:             m.ID,
			UserID:         m.UserID,
			RecipientName:  m.RecipientName,
			RecipientEmail: m.RecipientEmail,
			ProgramName:    m.ProgramName,
			IssueDate:      m.IssueDate,
			DesignJSON:     []byte(m.DesignJSON),
			Orientation:    certificate.Orientation(m.Orientation),
			PreviewImage:   m.PreviewImage,
			GroupName:      m.GroupName,
		},
		certificate.Status(m.Status),
		m.ShareToken,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func CertificateToModel(c *certificate.Certificate) *models.CertificateModel {
	return &models.CertificateModel{
		ID:             c.ID(),
		UserID:         c.UserID(),
		RecipientName:  c.RecipientName(),
		RecipientEmail: c.RecipientEmail(),
		ProgramName:    c.ProgramName(),
		IssueDate:      c.IssueDate(),
		DesignJSON:     jsonOrNil(c.DesignJSON()),
		Orientation:    string(c.Orientation()),
		PreviewImage:   c.PreviewImage(),
		GroupName:      c.GroupName(),
		Status:         string(c.Status()),
		ShareToken:     c.ShareToken(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}

func CertificatesToEntities(ms []*models.CertificateModel) []*certificate.Certificate {
	out := make([]*certificate.Certificate, 0, len(ms))
	for _, m := range ms {
		out = append(out, CertificateToEntity(m))
	}
	return out
}

// jsonOrNil stores absent payloads as SQL NULL rather than an empty
// string, which JSON columns reject.
func jsonOrNil(b []byte) datatypes.JSON {
	if len(b) == 0 {
		return nil
	}
	return datatypes.JSON(b)
}
