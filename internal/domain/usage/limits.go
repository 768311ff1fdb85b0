package usage

import (
	"fmt"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
)

// Tag identifies the limit that rejected an operation. It is returned to
// clients as limit_reached.
type Tag string

const (
	TagTrainings               Tag = "trainings"
	TagCertificatesPerTraining Tag = "certificates_per_training"
	TagDesigns                 Tag = "designs"
	TagAssets                  Tag = "assets"
	TagStorage                 Tag = "storage"
)

// LimitExceededError describes a rejected creation.
type LimitExceededError struct {
	Tag     Tag
	Limit   int64
	Current float64
}

func (e *LimitExceededError) Error() string {
	switch e.Tag {
	case TagTrainings:
		return fmt.Sprintf("training limit reached for your plan (limit: %d)", e.Limit)
	case TagCertificatesPerTraining:
		return fmt.Sprintf("certificate limit per training reached (limit: %d)", e.Limit)
	case TagDesigns:
		return fmt.Sprintf("design limit reached for your plan (limit: %d)", e.Limit)
	case TagAssets:
		return fmt.Sprintf("asset limit reached for your plan (limit: %d)", e.Limit)
	case TagStorage:
		return fmt.Sprintf("storage limit exceeded (limit: %d MB)", e.Limit)
	default:
		return fmt.Sprintf("%s limit reached (limit: %d)", e.Tag, e.Limit)
	}
}

// CertificateCheck is the state a single certificate issue is checked
// against. GroupCertificates counts the user's certificates that already
// carry the requested group name.
type CertificateCheck struct {
	Usage             Usage
	GroupCertificates int64
}

// NewTraining reports whether the certificate opens a training group the
// user has not used yet.
func (c CertificateCheck) NewTraining() bool {
	return c.GroupCertificates == 0
}

// CheckCertificate applies the training limit to new groups and the
// per-training limit to every certificate.
func CheckCertificate(limits plan.Limits, c CertificateCheck) error {
	if c.NewTraining() {
		if max, ok := limits.Get(plan.LimitTrainings); ok && c.Usage.Trainings >= max {
			return &LimitExceededError{Tag: TagTrainings, Limit: max, Current: float64(c.Usage.Trainings)}
		}
	}
	if max, ok := limits.Get(plan.LimitCertificatesPerTraining); ok && c.GroupCertificates >= max {
		return &LimitExceededError{Tag: TagCertificatesPerTraining, Limit: max, Current: float64(c.GroupCertificates)}
	}
	return nil
}

// CheckDesign limits non-template designs only.
func CheckDesign(limits plan.Limits, u Usage, isTemplate bool) error {
	if isTemplate {
		return nil
	}
	if max, ok := limits.Get(plan.LimitDesigns); ok && u.Designs >= max {
		return &LimitExceededError{Tag: TagDesigns, Limit: max, Current: float64(u.Designs)}
	}
	return nil
}

// CheckAsset applies the asset count limit, then the storage limit with the
// new content included.
func CheckAsset(limits plan.Limits, u Usage, contentBytes int) error {
	if max, ok := limits.Get(plan.LimitAssets); ok && u.Assets >= max {
		return &LimitExceededError{Tag: TagAssets, Limit: max, Current: float64(u.Assets)}
	}
	if max, ok := limits.Get(plan.LimitStorageMB); ok {
		projected := float64(u.StorageMB) + float64(contentBytes)/bytesPerMB
		if projected > float64(max) {
			return &LimitExceededError{Tag: TagStorage, Limit: max, Current: projected}
		}
	}
	return nil
}
