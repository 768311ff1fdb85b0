package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/setting"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type GetSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewGetSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingRepo: settingRepo, logger: logger}
}

// Execute returns every setting as a flat key to value map.
func (uc *GetSettingsUseCase) Execute(ctx context.Context) (map[string]string, error) {
	list, err := uc.settingRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to get settings")
	}

	out := make(map[string]string, len(list))
	for _, s := range list {
		out[s.Key()] = s.Value()
	}
	return out, nil
}
