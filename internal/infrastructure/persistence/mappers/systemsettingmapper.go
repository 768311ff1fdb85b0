package mappers

import (
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/setting"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
)

func SystemSettingToEntity(m *models.SystemSettingModel) *setting.SystemSetting {
	if m == nil {
		return nil
	}
	return setting.ReconstructSystemSetting(m.ID, m.SettingKey, m.Value, m.Description, m.CreatedAt, m.UpdatedAt)
}

func SystemSettingsToEntities(ms []*models.SystemSettingModel) []*setting.SystemSetting {
	out := make([]*setting.SystemSetting, 0, len(ms))
	for _, m := range ms {
		out = append(out, SystemSettingToEntity(m))
	}
	return out
}
