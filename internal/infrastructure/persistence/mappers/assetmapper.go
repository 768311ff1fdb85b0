package mappers

import (
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/asset"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
)

func AssetToEntity(m *models.AssetModel) *asset.Asset {
	if m == nil {
		return nil
	}
	return asset.ReconstructAsset(m.ID, m.UserID, m.Name, m.MimeType, m.Content, m.CreatedAt, m.UpdatedAt)
}

func AssetToModel(a *asset.Asset) *models.AssetModel {
	return &models.AssetModel{
		ID:        a.ID(),
		UserID:    a.UserID(),
		Name:      a.Name(),
		MimeType:  a.MimeType(),
		Content:   a.Content(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func AssetsToEntities(ms []*models.AssetModel) []*asset.Asset {
	out := make([]*asset.Asset, 0, len(ms))
	for _, m := range ms {
		out = append(out, AssetToEntity(m))
	}
	return out
}
