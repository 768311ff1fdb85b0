package usecases

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/design/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/usage/services"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/design"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/usage"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

type CreateDesignCommand struct {
	ID           string           `json:"id" validate:"omitempty,max=64"`
	UserID       string           `json:"user_id" validate:"max=64"`
	Name         string           `json:"name" validate:"required,max=255"`
	DesignJSON   json.RawMessage  `json:"design_json" validate:"required"`
	Orientation  string           `json:"orientation" validate:"omitempty,oneof=landscape portrait"`
	PreviewImage *string          `json:"preview_image"`
	IsTemplate   bool             `json:"is_template"`
	Requester    common.Requester `json:"-"`
}

type CreateDesignUseCase struct {
	designRepo design.Repository
	guard      *services.LimitGuard
	logger     logger.Interface
}

func NewCreateDesignUseCase(designRepo design.Repository, guard *services.LimitGuard, logger logger.Interface) *CreateDesignUseCase {
	return &CreateDesignUseCase{designRepo: designRepo, guard: guard, logger: logger}
}

// Execute creates a user design under the design limit, or a shared
// template. Templates are admin only and never counted.
func (uc *CreateDesignUseCase) Execute(ctx context.Context, cmd CreateDesignCommand) (*dto.DesignDTO, error) {
	cmd.Name = utils.NormalizeText(cmd.Name)
	cmd.ID = strings.TrimSpace(cmd.ID)
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}
	if !utils.IsJSONDocument(cmd.DesignJSON) {
		return nil, errors.NewValidationError("design_json must be a JSON object or array")
	}
	orientation, err := certificate.ParseOrientation(cmd.Orientation)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	id := cmd.ID
	if id == "" {
		id = uuid.NewString()
	}

	if cmd.IsTemplate {
		if !cmd.Requester.IsAdmin() {
			return nil, errors.NewForbiddenError("only admins can create templates")
		}
		var owner *string
		if cmd.UserID != "" {
			owner = &cmd.UserID
		}
		d, err := design.NewDesign(id, owner, cmd.Name, cmd.DesignJSON, orientation, cmd.PreviewImage, true)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.designRepo.Create(ctx, d); err != nil {
			return nil, uc.persistError(err, id)
		}
		uc.logger.Infow("design template created", "design_id", id, "by", cmd.Requester.UserID)
		return dto.ToDesignDTO(d), nil
	}

	userID := cmd.UserID
	if userID == "" {
		userID = cmd.Requester.UserID
	}
	if err := cmd.Requester.RequireAccess(userID); err != nil {
		return nil, err
	}

	d, err := design.NewDesign(id, &userID, cmd.Name, cmd.DesignJSON, orientation, cmd.PreviewImage, false)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.guard.Run(ctx, userID, func(txCtx context.Context, snap *services.Snapshot) error {
		if err := usage.CheckDesign(snap.Plan.Limits(), snap.Usage, false); err != nil {
			return err
		}
		if err := uc.designRepo.Create(txCtx, d); err != nil {
			return uc.persistError(err, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("design created", "design_id", id, "user_id", userID)
	return dto.ToDesignDTO(d), nil
}

func (uc *CreateDesignUseCase) persistError(err error, id string) error {
	if errors.IsDuplicateError(err) {
		return errors.NewConflictError("design id already exists", id)
	}
	uc.logger.Errorw("failed to create design", "error", err, "design_id", id)
	return errors.NewInternalError("failed to create design")
}
