package routing

import (
	"fmt"
	"time"
)

/* Rule represents one prioritized condition -> destination mapping for a funnel
 * Lower priority numbers are evaluated first
 * Uses value semantics as it represents data, not behavior
 */
type Rule struct {
	ID         string
	FunnelID   string
	Priority   int
	Condition  Condition
	WebhookURL string
	ClientName string
	Active     bool
	CreatedAt  time.Time
}

// Validate checks if the rule configuration is valid
func (r *Rule) Validate() error {
	if r.FunnelID == "" {
		return fmt.Errorf("funnel_id cannot be empty")
	}
	if r.WebhookURL == "" {
		return fmt.Errorf("webhook_url cannot be empty for rule %s", r.ID)
	}
	if r.Priority < 0 {
		return fmt.Errorf("priority cannot be negative for rule %s", r.ID)
	}
	if r.Condition.Field == "" {
		return fmt.Errorf("condition field cannot be empty for rule %s", r.ID)
	}
	return nil
}
