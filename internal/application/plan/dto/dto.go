package dto

import (
	"time"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/services/markdown"
)

// PlanDTO always carries limits and features as structured objects.
type PlanDTO struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Price           *float64         `json:"price"`
	YearlyPrice     *float64         `json:"yearly_price"`
	BillingType     string           `json:"billing_type"`
	Description     string           `json:"description,omitempty"`
	DescriptionHTML string           `json:"description_html,omitempty"`
	Limits          map[string]int64 `json:"limits"`
	Features        map[string]bool  `json:"features"`
	IsActive        bool             `json:"is_active"`
	CreatedAt       *time.Time       `json:"created_at,omitempty"`
	UpdatedAt       *time.Time       `json:"updated_at,omitempty"`
}

// ToPlanDTO converts a plan. md may be nil, in which case description_html
// is omitted. Built-in fallback plans have zero timestamps, which are
// omitted as well.
func ToPlanDTO(p *plan.Plan, md markdown.MarkdownService) *PlanDTO {
	if p == nil {
		return nil
	}

	out := &PlanDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Price:       p.Price(),
		YearlyPrice: p.YearlyPrice(),
		BillingType: string(p.BillingType()),
		Description: p.Description(),
		Limits:      map[string]int64(p.Limits()),
		Features:    map[string]bool(p.Features()),
		IsActive:    p.IsActive(),
	}
	if out.Limits == nil {
		out.Limits = map[string]int64{}
	}
	if out.Features == nil {
		out.Features = map[string]bool{}
	}

	if md != nil && p.Description() != "" {
		if html, err := md.ToHTMLSanitized(p.Description()); err == nil {
			out.DescriptionHTML = html
		}
	}

	if created := p.CreatedAt(); !created.IsZero() {
		out.CreatedAt = &created
	}
	if updated := p.UpdatedAt(); !updated.IsZero() {
		out.UpdatedAt = &updated
	}
	return out
}

func ToPlanDTOList(plans []*plan.Plan, md markdown.MarkdownService) []*PlanDTO {
	out := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, ToPlanDTO(p, md))
	}
	return out
}
