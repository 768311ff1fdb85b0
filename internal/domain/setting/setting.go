package setting

import (
	"regexp"
	"time"
)

var keyPattern = regexp.MustCompile(`^[a-z0-9_.-]{1,100}$`)

// SystemSetting is a single key/value pair readable by anyone and writable
// by admins.
type SystemSetting struct {
	id          uint
	key         string
	value       string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSystemSetting(key, value, description string) (*SystemSetting, error) {
	if !keyPattern.MatchString(key) {
		return nil, ErrInvalidKey
	}
	now := time.Now()
	return &SystemSetting{
		key:         key,
		value:       value,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructSystemSetting(id uint, key, value, description string, createdAt, updatedAt time.Time) *SystemSetting {
	return &SystemSetting{
		id:          id,
		key:         key,
		value:       value,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *SystemSetting) ID() uint             { return s.id }
func (s *SystemSetting) Key() string          { return s.key }
func (s *SystemSetting) Value() string        { return s.value }
func (s *SystemSetting) Description() string  { return s.description }
func (s *SystemSetting) CreatedAt() time.Time { return s.createdAt }
func (s *SystemSetting) UpdatedAt() time.Time { return s.updatedAt }
