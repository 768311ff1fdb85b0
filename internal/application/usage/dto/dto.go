package dto

import (
	plandto "github.com/seyidturgut/certifix.ai-sub001/internal/application/plan/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/usage"
)

// UsageDTO is the body of GET /usage/{userId}.
type UsageDTO struct {
	Plan  *plandto.PlanDTO `json:"plan"`
	Usage usage.Usage      `json:"usage"`
}
