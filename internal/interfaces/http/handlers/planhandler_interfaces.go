package handlers

import (
	"context"

	plandto "github.com/seyidturgut/certifix.ai-sub001/internal/application/plan/dto"
	planuc "github.com/seyidturgut/certifix.ai-sub001/internal/application/plan/usecases"
)

// Use case interfaces for PlanHandler

type createPlanUseCase interface {
	Execute(ctx context.Context, cmd planuc.CreatePlanCommand) (*plandto.PlanDTO, error)
}

type updatePlanUseCase interface {
	Execute(ctx context.Context, cmd planuc.UpdatePlanCommand) (*plandto.PlanDTO, error)
}

type getPlanUseCase interface {
	Execute(ctx context.Context, id string) (*plandto.PlanDTO, error)
}

type listPlansUseCase interface {
	Execute(ctx context.Context, onlyActive bool) ([]*plandto.PlanDTO, error)
}

type deletePlanUseCase interface {
	Execute(ctx context.Context, id string) error
}
