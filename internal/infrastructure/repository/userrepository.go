package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/user"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/mappers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/db"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepositoryImpl{db: db, logger: logger}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.UserToModel(u)).Error; err != nil {
		r.logger.Errorw("failed to create user", "error", err, "user_id", u.ID())
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id string) (*user.User, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getBy(ctx, "email = ?", user.NormalizeEmail(email))
}

func (r *UserRepositoryImpl) getBy(ctx context.Context, cond string, arg interface{}) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return mappers.UserToEntity(&model), nil
}

func (r *UserRepositoryImpl) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var userModels []*models.UserModel
	err := query.
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("created_at DESC, id ASC").
		Find(&userModels).Error
	if err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return mappers.UsersToEntities(userModels), total, nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)
	err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("id = ?", u.ID()).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"email":         model.Email,
			"password_hash": model.PasswordHash,
			"role":          model.Role,
			"organization":  model.Organization,
			"updated_at":    model.UpdatedAt,
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update user", "error", err, "user_id", u.ID())
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.UserModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("email = ?", user.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

// LockForUpdate must run inside a transaction to have any effect. It returns
// user.ErrUserNotFound when no row exists, since there is nothing to lock
// and concurrent creations for that id would not be serialized.
func (r *UserRepositoryImpl) LockForUpdate(ctx context.Context, id string) error {
	var model models.UserModel
	err := db.ForUpdate(db.GetTxFromContext(ctx, r.db)).
		Select("id").
		Where("id = ?", id).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to lock user: %w", err)
	}
	return nil
}
