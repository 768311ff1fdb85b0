package usecases

import (
	"context"
	"fmt"
	"sort"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/setting"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type UpdateSettingsCommand struct {
	Settings map[string]string `json:"settings" binding:"required"`
}

type UpdateSettingsUseCase struct {
	settingRepo setting.Repository
	tx          TransactionRunner
	logger      logger.Interface
}

func NewUpdateSettingsUseCase(settingRepo setting.Repository, tx TransactionRunner, logger logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{settingRepo: settingRepo, tx: tx, logger: logger}
}

// Execute upserts all keys in one transaction. Descriptions of existing
// keys are kept.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) (map[string]string, error) {
	if len(cmd.Settings) == 0 {
		return nil, errors.NewValidationError("settings must not be empty")
	}

	keys := make([]string, 0, len(cmd.Settings))
	for k := range cmd.Settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, key := range keys {
			var description string
			existing, err := uc.settingRepo.GetByKey(txCtx, key)
			if err != nil {
				return err
			}
			if existing != nil {
				description = existing.Description()
			}

			s, err := setting.NewSystemSetting(key, cmd.Settings[key], description)
			if err != nil {
				return errors.NewValidationError(err.Error(), fmt.Sprintf("key=%s", key))
			}
			if err := uc.settingRepo.Upsert(txCtx, s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update settings", "error", err)
		return nil, errors.NewInternalError("failed to update settings")
	}

	uc.logger.Infow("settings updated", "keys", keys)
	return cmd.Settings, nil
}
