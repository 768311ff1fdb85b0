package usecases

import (
	"context"
	"encoding/json"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/design/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/design"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

// UpdateDesignCommand is a sparse patch. The template flag cannot change:
// flipping it would move a design in or out of the counted set.
type UpdateDesignCommand struct {
	ID           string
	Name         *string
	DesignJSON   json.RawMessage
	Orientation  *string
	PreviewImage *string
	Requester    common.Requester
}

type UpdateDesignUseCase struct {
	designRepo design.Repository
	logger     logger.Interface
}

func NewUpdateDesignUseCase(designRepo design.Repository, logger logger.Interface) *UpdateDesignUseCase {
	return &UpdateDesignUseCase{designRepo: designRepo, logger: logger}
}

func (uc *UpdateDesignUseCase) Execute(ctx context.Context, cmd UpdateDesignCommand) (*dto.DesignDTO, error) {
	d, err := loadManaged(ctx, uc.designRepo, uc.logger, cmd.ID, cmd.Requester)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if err := d.Rename(utils.NormalizeText(*cmd.Name)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if !utils.IsAbsentJSON(cmd.DesignJSON) {
		if !utils.IsJSONDocument(cmd.DesignJSON) {
			return nil, errors.NewValidationError("design_json must be a JSON object or array")
		}
		d.SetContent(cmd.DesignJSON)
	}
	if cmd.Orientation != nil {
		o, err := certificate.ParseOrientation(*cmd.Orientation)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		d.SetOrientation(o)
	}
	if cmd.PreviewImage != nil {
		d.SetPreviewImage(cmd.PreviewImage)
	}

	if err := uc.designRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update design", "error", err, "design_id", cmd.ID)
		return nil, errors.NewInternalError("failed to update design")
	}
	return dto.ToDesignDTO(d), nil
}
