package lead

import (
	"fmt"
	"time"
)

/* Lead represents one captured form submission
 * Immutable after creation except for the routing-outcome fields, which are
 * written at most once by the router's first attempt (and again only if a
 * later retry finally delivers)
 */
type Lead struct {
	ID       string
	FunnelID string
	// FunnelSlug is joined from the owning funnel; it rides along for the
	// delivery payload
	FunnelSlug   string
	Variant      string
	Data         map[string]any
	UTMParams    map[string]any
	SentTo       *string
	SentToClient *string
	Status       Status
	ErrorMessage *string
	SentAt       *time.Time
	CreatedAt    time.Time
}

/* Status represents the routing state of a lead
 * Accepted and Rejected are set by client feedback, not by the router
 */
type Status int

const (
	Pending Status = iota + 1
	Sent
	Accepted
	Rejected
	Error
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Sent:
		return "sent"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// NewStatus creates a Status from a string
func NewStatus(str string) Status {
	switch str {
	case "pending":
		return Pending
	case "sent":
		return Sent
	case "accepted":
		return Accepted
	case "rejected":
		return Rejected
	case "error":
		return Error
	default:
		return Pending
	}
}

// Validate checks if the status is valid
func (s Status) Validate() error {
	if s < Pending || s > Error {
		return fmt.Errorf("invalid status: %d", s)
	}
	return nil
}
