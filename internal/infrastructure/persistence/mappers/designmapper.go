package mappers

import (
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/design"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
)

func DesignToEntity(m *models.DesignModel) *design.Design {
	if m == nil {
		return nil
	}
	return design.ReconstructDesign(
		m.ID,
		m.UserID,
		m.Name,
		[]byte(m.DesignJSON),
		certificate.Orientation(m.Orientation),
		m.PreviewImage,
		m.IsTemplate != nil && *m.IsTemplate,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func DesignToModel(d *design.Design) *models.DesignModel {
	isTemplate := d.IsTemplate()
	return &models.DesignModel{
		ID:           d.ID(),
		UserID:       d.UserID(),
		Name:         d.Name(),
		DesignJSON:   jsonOrNil(d.DesignJSON()),
		Orientation:  string(d.Orientation()),
		PreviewImage: d.PreviewImage(),
		IsTemplate:   &isTemplate,
		CreatedAt:    d.CreatedAt(),
		UpdatedAt:    d.UpdatedAt(),
	}
}

func DesignsToEntities(ms []*models.DesignModel) []*design.Design {
	out := make([]*design.Design, 0, len(ms))
	for _, m := range ms {
		out = append(out, DesignToEntity(m))
	}
	return out
}
