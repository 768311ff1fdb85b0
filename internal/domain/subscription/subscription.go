package subscription

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusPending   Status = "PENDING"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPending, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

// Subscription links a user to a plan. Only ACTIVE subscriptions decide
// which plan limits apply.
type Subscription struct {
	id        uint
	userID    string
	packageID string
	status    Status
	startsAt  time.Time
	expiresAt *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewSubscription(userID, packageID string, status Status, startsAt time.Time, expiresAt *time.Time) (*Subscription, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	if packageID == "" {
		return nil, ErrPackageRequired
	}
	if status == "" {
		status = StatusActive
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	if startsAt.IsZero() {
		startsAt = time.Now()
	}
	if expiresAt != nil && !expiresAt.After(startsAt) {
		return nil, ErrInvalidPeriod
	}

	now := time.Now()
	return &Subscription{
		userID:    userID,
		packageID: packageID,
		status:    status,
		startsAt:  startsAt,
		expiresAt: expiresAt,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSubscription(id uint, userID, packageID string, status Status,
	startsAt time.Time, expiresAt *time.Time, createdAt, updatedAt time.Time) *Subscription {
	return &Subscription{
		id:        id,
		userID:    userID,
		packageID: packageID,
		status:    status,
		startsAt:  startsAt,
		expiresAt: expiresAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Subscription) ID() uint              { return s.id }
func (s *Subscription) UserID() string        { return s.userID }
func (s *Subscription) PackageID() string     { return s.packageID }
func (s *Subscription) Status() Status        { return s.status }
func (s *Subscription) StartsAt() time.Time   { return s.startsAt }
func (s *Subscription) ExpiresAt() *time.Time { return s.expiresAt }
func (s *Subscription) CreatedAt() time.Time  { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time  { return s.updatedAt }

// SetID is called by the repository after insert.
func (s *Subscription) SetID(id uint) {
	s.id = id
}

func (s *Subscription) IsActive() bool {
	return s.status == StatusActive
}

// IsExpiredAt reports whether an active subscription has run past its end.
func (s *Subscription) IsExpiredAt(now time.Time) bool {
	return s.status == StatusActive && s.expiresAt != nil && !s.expiresAt.After(now)
}

// ChangeStatus moves to a new status. EXPIRED and CANCELLED are final.
func (s *Subscription) ChangeStatus(to Status) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, to)
	}
	if s.status == to {
		return nil
	}
	if s.status == StatusExpired || s.status == StatusCancelled {
		return fmt.Errorf("%w: from %s to %s", ErrInvalidTransition, s.status, to)
	}
	s.status = to
	s.updatedAt = time.Now()
	return nil
}
