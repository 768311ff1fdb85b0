package dto

import (
	"time"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/asset"
)

// AssetDTO omits content in listings; GET by id includes it.
type AssetDTO struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id"`
	Name      string    `json:"name"`
	MimeType  string    `json:"mime_type,omitempty"`
	SizeBytes int       `json:"size_bytes"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToAssetDTO(a *asset.Asset, withContent bool) *AssetDTO {
	if a == nil {
		return nil
	}
	out := &AssetDTO{
		ID:        a.ID(),
		UserID:    a.UserID(),
		Name:      a.Name(),
		MimeType:  a.MimeType(),
		SizeBytes: a.SizeBytes(),
		CreatedAt: a.CreatedAt(),
	}
	if withContent {
		out.Content = a.Content()
	}
	return out
}

func ToAssetDTOList(list []*asset.Asset) []*AssetDTO {
	out := make([]*AssetDTO, 0, len(list))
	for _, a := range list {
		out = append(out, ToAssetDTO(a, false))
	}
	return out
}
