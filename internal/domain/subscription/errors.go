package subscription

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrUserRequired         = errors.New("user id is required")
	ErrPackageRequired      = errors.New("package id is required")
	ErrInvalidStatus        = errors.New("invalid subscription status")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInvalidPeriod        = errors.New("expires_at must be after starts_at")
)
