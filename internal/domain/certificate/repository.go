package certificate

import "context"

type ListFilter struct {
	UserID    string
	GroupName string
	Page      int
	PageSize  int
}

type Repository interface {
	Create(ctx context.Context, c *Certificate) error
	GetByID(ctx context.Context, id string) (*Certificate, error)
	List(ctx context.Context, filter ListFilter) ([]*Certificate, int64, error)
	Update(ctx context.Context, c *Certificate) error
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	// CountInGroup counts the user's certificates carrying groupName.
	CountInGroup(ctx context.Context, userID, groupName string) (int64, error)
}
