package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/design/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/design"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type ListDesignsUseCase struct {
	designRepo design.Repository
	logger     logger.Interface
}

func NewListDesignsUseCase(designRepo design.Repository, logger logger.Interface) *ListDesignsUseCase {
	return &ListDesignsUseCase{designRepo: designRepo, logger: logger}
}

// Execute returns the user's designs followed by all templates.
func (uc *ListDesignsUseCase) Execute(ctx context.Context, userID string, requester common.Requester) ([]*dto.DesignDTO, error) {
	if userID == "" {
		userID = requester.UserID
	}
	if err := requester.RequireAccess(userID); err != nil {
		return nil, err
	}

	list, err := uc.designRepo.ListForUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list designs", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to list designs")
	}
	return dto.ToDesignDTOList(list), nil
}

type GetDesignUseCase struct {
	designRepo design.Repository
	logger     logger.Interface
}

func NewGetDesignUseCase(designRepo design.Repository, logger logger.Interface) *GetDesignUseCase {
	return &GetDesignUseCase{designRepo: designRepo, logger: logger}
}

// Execute returns a template to anyone and a user design to its owner.
func (uc *GetDesignUseCase) Execute(ctx context.Context, id string, requester common.Requester) (*dto.DesignDTO, error) {
	d, err := loadDesign(ctx, uc.designRepo, uc.logger, id)
	if err != nil {
		return nil, err
	}
	if !d.IsTemplate() && !canManage(d, requester) {
		return nil, errors.NewNotFoundError(design.ErrDesignNotFound.Error())
	}
	return dto.ToDesignDTO(d), nil
}

func loadDesign(ctx context.Context, repo design.Repository, log logger.Interface, id string) (*design.Design, error) {
	d, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get design", "error", err, "design_id", id)
		return nil, errors.NewInternalError("failed to get design")
	}
	if d == nil {
		return nil, errors.NewNotFoundError(design.ErrDesignNotFound.Error())
	}
	return d, nil
}

// canManage: admins manage everything, users only their own non-template
// designs.
func canManage(d *design.Design, requester common.Requester) bool {
	if requester.IsAdmin() {
		return true
	}
	return !d.IsTemplate() && d.OwnedBy(requester.UserID)
}

// loadManaged returns not found for another user's design and forbidden for
// a template the caller may only read.
func loadManaged(ctx context.Context, repo design.Repository, log logger.Interface, id string, requester common.Requester) (*design.Design, error) {
	d, err := loadDesign(ctx, repo, log, id)
	if err != nil {
		return nil, err
	}
	if canManage(d, requester) {
		return d, nil
	}
	if d.IsTemplate() {
		return nil, errors.NewForbiddenError("only admins can modify templates")
	}
	return nil, errors.NewNotFoundError(design.ErrDesignNotFound.Error())
}
