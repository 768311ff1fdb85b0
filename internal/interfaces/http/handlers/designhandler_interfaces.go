package handlers

import (
	"context"

	assetdto "github.com/seyidturgut/certifix.ai-sub001/internal/application/asset/dto"
	assetuc "github.com/seyidturgut/certifix.ai-sub001/internal/application/asset/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	designdto "github.com/seyidturgut/certifix.ai-sub001/internal/application/design/dto"
	designuc "github.com/seyidturgut/certifix.ai-sub001/internal/application/design/usecases"
)

// Use case interfaces for DesignHandler and AssetHandler

type createDesignUseCase interface {
	Execute(ctx context.Context, cmd designuc.CreateDesignCommand) (*designdto.DesignDTO, error)
}

type listDesignsUseCase interface {
	Execute(ctx context.Context, userID string, requester common.Requester) ([]*designdto.DesignDTO, error)
}

type getDesignUseCase interface {
	Execute(ctx context.Context, id string, requester common.Requester) (*designdto.DesignDTO, error)
}

type updateDesignUseCase interface {
	Execute(ctx context.Context, cmd designuc.UpdateDesignCommand) (*designdto.DesignDTO, error)
}

type deleteDesignUseCase interface {
	Execute(ctx context.Context, id string, requester common.Requester) error
}

type createAssetUseCase interface {
	Execute(ctx context.Context, cmd assetuc.CreateAssetCommand) (*assetdto.AssetDTO, error)
}

type listAssetsUseCase interface {
	Execute(ctx context.Context, userID string, requester common.Requester) ([]*assetdto.AssetDTO, error)
}

type getAssetUseCase interface {
	Execute(ctx context.Context, id string, requester common.Requester) (*assetdto.AssetDTO, error)
}

type deleteAssetUseCase interface {
	Execute(ctx context.Context, id string, requester common.Requester) error
}
