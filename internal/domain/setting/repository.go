package setting

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]*SystemSetting, error)
	GetByKey(ctx context.Context, key string) (*SystemSetting, error)
	// Upsert inserts or replaces value and description by key.
	Upsert(ctx context.Context, s *SystemSetting) error
}
