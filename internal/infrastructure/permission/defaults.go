package permission

import (
	"fmt"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/constants"
)

// DefaultPolicies grants the admin role every administrative action.
// Regular users need no policy: their routes are guarded by ownership.
func DefaultPolicies() [][]string {
	admin := constants.RoleAdmin
	return [][]string{
		{admin, ResourcePlan, ActionCreate},
		{admin, ResourcePlan, ActionUpdate},
		{admin, ResourcePlan, ActionDelete},
		{admin, ResourceUser, ActionList},
		{admin, ResourceUser, ActionDelete},
		{admin, ResourceSubscription, "*"},
		{admin, ResourceSetting, ActionUpdate},
	}
}

// EnsureDefaults adds any missing default policy. Existing rules are kept.
func (e *Enforcer) EnsureDefaults() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, p := range DefaultPolicies() {
		ok, err := e.enforcer.AddPolicy(p[0], p[1], p[2])
		if err != nil {
			e.logger.Errorw("failed to add default policy",
				"error", err,
				"role", p[0],
				"resource", p[1],
				"action", p[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
		if ok {
			added++
		}
	}

	if added > 0 {
		e.logger.Infow("default permissions initialized", "added", added)
	}
	return nil
}
