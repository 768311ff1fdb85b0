package plan

import (
	"fmt"
	"regexp"
	"time"
)

var idPattern = regexp.MustCompile(`^[a-z0-9_-]{1,50}$`)

// IsValidID reports whether id is a usable plan slug.
func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}

type BillingType string

const (
	BillingOneTime      BillingType = "one-time"
	BillingSubscription BillingType = "subscription"
	BillingContract     BillingType = "contract"
)

func (b BillingType) IsValid() bool {
	switch b {
	case BillingOneTime, BillingSubscription, BillingContract:
		return true
	}
	return false
}

// Limit keys as stored in the limits mapping.
const (
	LimitTrainings               = "trainings"
	LimitCertificatesPerTraining = "certificates_per_training"
	LimitDesigns                 = "designs"
	LimitAssets                  = "assets"
	LimitStorageMB               = "storage_mb"
)

// Unlimited is the sentinel used by seeded plans for limits that are
// effectively unbounded.
const Unlimited int64 = 999999

// Limits maps a resource to its integer ceiling. A missing key means the
// resource is not limited.
type Limits map[string]int64

func (l Limits) Get(key string) (int64, bool) {
	v, ok := l[key]
	return v, ok
}

// Features maps a feature name to whether the plan enables it.
type Features map[string]bool

func (f Features) Enabled(name string) bool {
	return f[name]
}

type Plan struct {
	id          string
	name        string
	price       *float64
	yearlyPrice *float64
	billingType BillingType
	description string
	limits      Limits
	features    Features
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPlan(id, name string, billingType BillingType, limits Limits, features Features) (*Plan, error) {
	if !IsValidID(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlanID, id)
	}
	if name == "" {
		return nil, ErrPlanNameRequired
	}
	if billingType == "" {
		billingType = BillingOneTime
	}
	if !billingType.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBillingType, billingType)
	}
	if err := validateLimits(limits); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Plan{
		id:          id,
		name:        name,
		billingType: billingType,
		limits:      copyLimits(limits),
		features:    copyFeatures(features),
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence without re-running
// creation rules, so legacy rows with odd ids still load.
func ReconstructPlan(id, name string, price, yearlyPrice *float64, billingType BillingType,
	description string, limits Limits, features Features, isActive bool,
	createdAt, updatedAt time.Time) *Plan {
	return &Plan{
		id:          id,
		name:        name,
		price:       price,
		yearlyPrice: yearlyPrice,
		billingType: billingType,
		description: description,
		limits:      copyLimits(limits),
		features:    copyFeatures(features),
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Plan) ID() string               { return p.id }
func (p *Plan) Name() string             { return p.name }
func (p *Plan) Price() *float64          { return p.price }
func (p *Plan) YearlyPrice() *float64    { return p.yearlyPrice }
func (p *Plan) BillingType() BillingType { return p.billingType }
func (p *Plan) Description() string      { return p.description }
func (p *Plan) IsActive() bool           { return p.isActive }
func (p *Plan) CreatedAt() time.Time     { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time     { return p.updatedAt }

// Limits returns a copy; callers cannot mutate the plan through it.
func (p *Plan) Limits() Limits { return copyLimits(p.limits) }

func (p *Plan) Features() Features { return copyFeatures(p.features) }

func (p *Plan) SetName(name string) error {
	if name == "" {
		return ErrPlanNameRequired
	}
	p.name = name
	p.touch()
	return nil
}

func (p *Plan) SetPricing(price, yearlyPrice *float64) error {
	if (price != nil && *price < 0) || (yearlyPrice != nil && *yearlyPrice < 0) {
		return ErrInvalidPrice
	}
	p.price = price
	p.yearlyPrice = yearlyPrice
	p.touch()
	return nil
}

func (p *Plan) SetPrice(price *float64) error {
	return p.SetPricing(price, p.yearlyPrice)
}

func (p *Plan) SetYearlyPrice(yearlyPrice *float64) error {
	return p.SetPricing(p.price, yearlyPrice)
}

func (p *Plan) SetBillingType(b BillingType) error {
	if !b.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidBillingType, b)
	}
	p.billingType = b
	p.touch()
	return nil
}

func (p *Plan) SetDescription(description string) {
	p.description = description
	p.touch()
}

// ReplaceLimits swaps the whole mapping; limits are never merged key by key.
func (p *Plan) ReplaceLimits(limits Limits) error {
	if err := validateLimits(limits); err != nil {
		return err
	}
	p.limits = copyLimits(limits)
	p.touch()
	return nil
}

func (p *Plan) ReplaceFeatures(features Features) {
	p.features = copyFeatures(features)
	p.touch()
}

func (p *Plan) Activate() {
	p.isActive = true
	p.touch()
}

func (p *Plan) Deactivate() {
	p.isActive = false
	p.touch()
}

func (p *Plan) touch() {
	p.updatedAt = time.Now()
}

func validateLimits(limits Limits) error {
	for k, v := range limits {
		if v < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeLimit, k, v)
		}
	}
	return nil
}

func copyLimits(in Limits) Limits {
	out := make(Limits, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyFeatures(in Features) Features {
	out := make(Features, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
