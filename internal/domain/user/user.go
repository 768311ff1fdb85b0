package user

import (
	"net/mail"
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	id           string
	name         string
	email        string
	passwordHash string
	role         Role
	organization *string
	createdAt    time.Time
	updatedAt    time.Time
}

// NormalizeEmail lowercases and trims so lookups and the unique index agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NewUser(id, name, email, passwordHash string, role Role, organization *string) (*User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	email = NormalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if passwordHash == "" {
		return nil, ErrPasswordRequired
	}
	if role == "" {
		role = RoleUser
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	now := time.Now()
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		organization: organization,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id, name, email, passwordHash string, role Role, organization *string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		organization: organization,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() string            { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() string         { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) Organization() *string { return u.organization }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) Rename(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	u.name = name
	u.touch()
	return nil
}

func (u *User) ChangeEmail(email string) error {
	email = NormalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	u.email = email
	u.touch()
	return nil
}

func (u *User) SetOrganization(org *string) {
	u.organization = org
	u.touch()
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordRequired
	}
	u.passwordHash = hash
	u.touch()
	return nil
}

func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return ErrInvalidRole
	}
	u.role = role
	u.touch()
	return nil
}

func (u *User) touch() {
	u.updatedAt = time.Now()
}
