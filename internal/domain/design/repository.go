package design

import "context"

type Repository interface {
	Create(ctx context.Context, d *Design) error
	GetByID(ctx context.Context, id string) (*Design, error)
	// ListForUser returns the user's own designs followed by shared
	// templates.
	ListForUser(ctx context.Context, userID string) ([]*Design, error)
	Update(ctx context.Context, d *Design) error
	Delete(ctx context.Context, id string) error
}
