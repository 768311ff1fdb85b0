package user

import "context"

type ListFilter struct {
	Page     int
	PageSize int
	Search   string
	Role     string
}

// Repository returns (nil, nil) from getters when no row matches.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// LockForUpdate takes a row lock on the user inside the current
	// transaction, serializing concurrent creations for that user.
	LockForUpdate(ctx context.Context, id string) error
}
