package handlers

import (
	"context"

	subdto "github.com/seyidturgut/certifix.ai-sub001/internal/application/subscription/dto"
	subuc "github.com/seyidturgut/certifix.ai-sub001/internal/application/subscription/usecases"
)

// Use case interfaces for SubscriptionHandler

type assignSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd subuc.AssignSubscriptionCommand) (*subdto.SubscriptionDTO, error)
}

type changeSubscriptionStatusUseCase interface {
	Execute(ctx context.Context, cmd subuc.ChangeStatusCommand) (*subdto.SubscriptionDTO, error)
}
