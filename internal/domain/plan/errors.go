package plan

import "errors"

var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrPlanNotConfigured  = errors.New("plan not configured")
	ErrPlanExists         = errors.New("plan already exists")
	ErrPlanInUse          = errors.New("plan has active subscriptions")
	ErrInvalidPlanID      = errors.New("invalid plan id")
	ErrPlanNameRequired   = errors.New("plan name is required")
	ErrInvalidBillingType = errors.New("invalid billing type")
	ErrInvalidPrice       = errors.New("price cannot be negative")
	ErrNegativeLimit      = errors.New("limit cannot be negative")
)
