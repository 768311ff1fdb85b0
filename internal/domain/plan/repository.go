package plan

import "context"

// Repository persists plans. GetByID returns (nil, nil) when the row does
// not exist.
type Repository interface {
	Create(ctx context.Context, p *Plan) error
	GetByID(ctx context.Context, id string) (*Plan, error)
	List(ctx context.Context, onlyActive bool) ([]*Plan, error)
	Update(ctx context.Context, p *Plan) error
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}
