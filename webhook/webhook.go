package webhook

import (
	"encoding/json"
	"time"
)

/* Core delivery entities
 * Logs form a forest via ParentLogID: one root per original send, chained
 * children for each retry and replay
 * Value semantics throughout: these represent data, not behavior
 */

// Defaults applied when a rule has no stored delivery policy yet
const (
	DefaultTimeoutMS              = 10000
	DefaultMaxRetries             = 3
	DefaultRetryDelayMS           = 1000
	DefaultRetryBackoffMultiplier = 2.0
)

// Config is the per-rule delivery policy
type Config struct {
	ID                     string
	RoutingRuleID          string
	CustomHeaders          map[string]string
	TimeoutMS              int
	RetryEnabled           bool
	MaxRetries             int
	RetryDelayMS           int
	RetryBackoffMultiplier float64
}

// DefaultConfig returns the delivery policy used until a rule stores its own
func DefaultConfig(ruleID string) Config {
	return Config{
		RoutingRuleID:          ruleID,
		CustomHeaders:          map[string]string{},
		TimeoutMS:              DefaultTimeoutMS,
		RetryEnabled:           true,
		MaxRetries:             DefaultMaxRetries,
		RetryDelayMS:           DefaultRetryDelayMS,
		RetryBackoffMultiplier: DefaultRetryBackoffMultiplier,
	}
}

// MaxAttempts is the total attempt budget (original send + retries)
func (c Config) MaxAttempts() int {
	return c.MaxRetries + 1
}

// Log is one audit record per delivery attempt (not per lead)
type Log struct {
	ID              string
	LeadID          string
	RoutingRuleID   string
	WebhookURL      string
	RequestHeaders  map[string]string
	RequestBody     json.RawMessage
	ResponseStatus  *int
	ResponseHeaders map[string]string
	ResponseBody    *string
	DurationMS      *int64
	AttemptNumber   int
	MaxAttempts     int
	IsRetry         bool
	ParentLogID     *string
	Status          Status
	ErrorMessage    *string
	ErrorType       *ErrorType
	CreatedAt       time.Time

	// ClientName is joined from the routing rule when a single log is read,
	// so replays carry the same attribution as the original delivery; it is
	// not a log column
	ClientName string
}

/* QueueEntry is one scheduled future send attempt
 * Priority equals the upcoming attempt number, so earlier retries are served
 * before later ones across leads
 * WebhookURL and ClientName are joined from the routing rule when entries
 * are read for dispatch; they are not queue columns
 */
type QueueEntry struct {
	ID            string
	LeadID        string
	RoutingRuleID string
	WebhookLogID  string
	Status        QueueStatus
	Priority      int
	AttemptNumber int
	MaxAttempts   int
	ScheduledAt   time.Time
	StartedAt     *time.Time
	CompletedAt   *time.Time
	ErrorMessage  *string
	CreatedAt     time.Time

	WebhookURL string
	ClientName string
}

// Stats aggregates delivery outcomes for one rule over a trailing window
type Stats struct {
	TotalCalls    int64   `json:"total_calls"`
	SuccessCalls  int64   `json:"success_calls"`
	FailedCalls   int64   `json:"failed_calls"`
	AvgDurationMS float64 `json:"avg_duration_ms"`
	SuccessRate   float64 `json:"success_rate"`
}
