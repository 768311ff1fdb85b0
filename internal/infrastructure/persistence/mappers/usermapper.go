package mappers

import (
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/user"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
)

func UserToEntity(m *models.UserModel) *user.User {
	if m == nil {
		return nil
	}
	return user.ReconstructUser(m.ID, m.Name, m.Email, m.PasswordHash, user.Role(m.Role), m.Organization, m.CreatedAt, m.UpdatedAt)
}

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         string(u.Role()),
		Organization: u.Organization(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func UsersToEntities(ms []*models.UserModel) []*user.User {
	out := make([]*user.User, 0, len(ms))
	for _, m := range ms {
		out = append(out, UserToEntity(m))
	}
	return out
}
