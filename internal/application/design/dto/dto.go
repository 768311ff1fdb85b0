package dto

import (
	"encoding/json"
	"time"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/design"
)

type DesignDTO struct {
	ID           string          `json:"id"`
	UserID       *string         `json:"user_id"`
	Name         string          `json:"name"`
	DesignJSON   json.RawMessage `json:"design_json,omitempty"`
	Orientation  string          `json:"orientation"`
	PreviewImage *string         `json:"preview_image,omitempty"`
	IsTemplate   bool            `json:"is_template"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func ToDesignDTO(d *design.Design) *DesignDTO {
	if d == nil {
		return nil
	}
	out := &DesignDTO{
		ID:           d.ID(),
		UserID:       d.UserID(),
		Name:         d.Name(),
		Orientation:  string(d.Orientation()),
		PreviewImage: d.PreviewImage(),
		IsTemplate:   d.IsTemplate(),
		CreatedAt:    d.CreatedAt(),
		UpdatedAt:    d.UpdatedAt(),
	}
	if raw := d.DesignJSON(); len(raw) > 0 && json.Valid(raw) {
		out.DesignJSON = json.RawMessage(raw)
	}
	return out
}

func ToDesignDTOList(list []*design.Design) []*DesignDTO {
	out := make([]*DesignDTO, 0, len(list))
	for _, d := range list {
		out = append(out, ToDesignDTO(d))
	}
	return out
}
