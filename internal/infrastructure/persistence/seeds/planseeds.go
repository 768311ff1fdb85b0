// Package seeds loads reference data shipped with the service.
package seeds

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/mappers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type planSeed struct {
	ID          string                 `yaml:"id"`
	Name        string                 `yaml:"name"`
	Price       *float64               `yaml:"price"`
	YearlyPrice *float64               `yaml:"yearly_price"`
	BillingType string                 `yaml:"billing_type"`
	Description string                 `yaml:"description"`
	Limits      map[string]interface{} `yaml:"limits"`
	Features    map[string]interface{} `yaml:"features"`
	Active      *bool                  `yaml:"active"`
}

type planSeedFile struct {
	Plans []planSeed `yaml:"plans"`
}

// LoadPlansFile reads a plans.yaml document.
func LoadPlansFile(path string) ([]*plan.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan seeds: %w", err)
	}
	return ParsePlans(data)
}

// ParsePlans decodes plan seeds. Limits and features go through the same
// decoder as database rows.
func ParsePlans(data []byte) ([]*plan.Plan, error) {
	var file planSeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse plan seeds: %w", err)
	}

	plans := make([]*plan.Plan, 0, len(file.Plans))
	seen := make(map[string]struct{}, len(file.Plans))
	for i, s := range file.Plans {
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("plan seed %d: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = struct{}{}

		p, err := s.toPlan()
		if err != nil {
			return nil, fmt.Errorf("plan seed %d (%s): %w", i, s.ID, err)
		}
		plans = append(plans, p)
	}
	return plans, nil
}

func (s planSeed) toPlan() (*plan.Plan, error) {
	limits, err := mappers.DecodeLimits(s.Limits)
	if err != nil {
		return nil, err
	}
	features, err := mappers.DecodeFeatures(s.Features)
	if err != nil {
		return nil, err
	}

	p, err := plan.NewPlan(s.ID, s.Name, plan.BillingType(s.BillingType), limits, features)
	if err != nil {
		return nil, err
	}
	if err := p.SetPricing(s.Price, s.YearlyPrice); err != nil {
		return nil, err
	}
	p.SetDescription(s.Description)
	if s.Active != nil && !*s.Active {
		p.Deactivate()
	}
	return p, nil
}

// SeedResult counts what SeedPlans did.
type SeedResult struct {
	Created int
	Updated int
	Skipped int
}

// SeedPlans inserts missing plans. Existing rows are left alone unless
// overwrite is set.
func SeedPlans(ctx context.Context, repo plan.Repository, plans []*plan.Plan, overwrite bool, log logger.Interface) (SeedResult, error) {
	var res SeedResult
	for _, p := range plans {
		existing, err := repo.GetByID(ctx, p.ID())
		if err != nil {
			return res, err
		}

		switch {
		case existing == nil:
			if err := repo.Create(ctx, p); err != nil {
				return res, err
			}
			res.Created++
		case overwrite:
			if err := repo.Update(ctx, p); err != nil {
				return res, err
			}
			res.Updated++
		default:
			res.Skipped++
		}
	}

	log.Infow("plan seeds applied",
		"created", res.Created,
		"updated", res.Updated,
		"skipped", res.Skipped)
	return res, nil
}
