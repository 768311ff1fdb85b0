package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/design"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type DeleteDesignUseCase struct {
	designRepo design.Repository
	logger     logger.Interface
}

func NewDeleteDesignUseCase(designRepo design.Repository, logger logger.Interface) *DeleteDesignUseCase {
	return &DeleteDesignUseCase{designRepo: designRepo, logger: logger}
}

func (uc *DeleteDesignUseCase) Execute(ctx context.Context, id string, requester common.Requester) error {
	if _, err := loadManaged(ctx, uc.designRepo, uc.logger, id, requester); err != nil {
		return err
	}
	if err := uc.designRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete design", "error", err, "design_id", id)
		return errors.NewInternalError("failed to delete design")
	}
	uc.logger.Infow("design deleted", "design_id", id, "by", requester.UserID)
	return nil
}
