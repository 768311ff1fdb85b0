package asset

import "context"

type Repository interface {
	Create(ctx context.Context, a *Asset) error
	GetByID(ctx context.Context, id string) (*Asset, error)
	ListByUser(ctx context.Context, userID string) ([]*Asset, error)
	Delete(ctx context.Context, id string) error
}
