package plan

import (
	"time"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/constants"
)

// Fallback returns the built-in definition for id. Only the baseline plan
// has one; any other missing plan is a configuration error.
func Fallback(id string) (*Plan, bool) {
	if id != constants.BaselinePlanID {
		return nil, false
	}
	return ReconstructPlan(
		constants.BaselinePlanID,
		"Tek Eğitim",
		nil,
		nil,
		BillingOneTime,
		"",
		Limits{
			LimitTrainings:               1,
			LimitCertificatesPerTraining: 100,
			LimitDesigns:                 5,
			LimitAssets:                  20,
			LimitStorageMB:               100,
		},
		Features{
			"qr_verification": true,
			"pdf_export":      true,
			"email_delivery":  false,
			"custom_branding": false,
		},
		true,
		time.Time{},
		time.Time{},
	), true
}
