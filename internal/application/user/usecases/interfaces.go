package usecases

import "github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/auth"

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenIssuer interface {
	Generate(userID, role string) (*auth.AccessToken, error)
}
