package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Headers set on every delivery; a rule's custom headers may override them
const (
	userAgent        = "BPC-Funnels/2.0"
	headerLeadID     = "X-Lead-ID"
	headerFunnelHook = "X-Funnel-Webhook"
	defaultBatchSize = 10
	defaultStatsDays = 7
)

// UseCase defines the business operations of the delivery engine
type UseCase interface {
	Send(ctx context.Context, opts SendOptions) (Log, error)
	ProcessQueue(ctx context.Context) (int, error)
	Replay(ctx context.Context, logID string) (Log, error)
	Stats(ctx context.Context, ruleID string, days int) (Stats, error)
	Logs(ctx context.Context, ruleID string, filter LogFilter) ([]Log, int, error)
	UpdateConfig(ctx context.Context, cfg Config) (Config, error)
}

// SendOptions parameterizes one audited delivery
type SendOptions struct {
	LeadID        string
	RoutingRuleID string
	WebhookURL    string
	ClientName    string
	Payload       json.RawMessage
	// Config overrides the rule's stored policy when set
	Config        *Config
	IsRetry       bool
	ParentLogID   *string
	AttemptNumber int
}

/* Manager is the delivery engine: it sends webhooks with full audit logging,
 * schedules bounded backoff retries and drains the retry queue
 * Uses pointer semantics as it's an API, not data
 * One configured Manager per process, injected where needed
 */
type Manager struct {
	Store  Store
	Sender Sender
	/* Leads, when set, flips the lead to sent on a successful retry or
	 * replay; the first attempt's lead update stays with the router
	 */
	Leads LeadMarker
	// Configs is an optional read-through policy cache
	Configs   ConfigCache
	BatchSize int
}

// NewManager creates a delivery engine with dependency injection
func NewManager(store Store, sender Sender) *Manager {
	return &Manager{
		Store:     store,
		Sender:    sender,
		BatchSize: defaultBatchSize,
	}
}

/* Send performs one audited delivery attempt
 * Transport failures never escape: they are encoded into the returned log,
 * and a retry is queued when the rule's policy allows and attempts remain
 * Only store failures (an unloggable attempt) are returned as errors
 */
func (m *Manager) Send(ctx context.Context, opts SendOptions) (Log, error) {
	attempt := opts.AttemptNumber
	if attempt < 1 {
		attempt = 1
	}

	cfg, err := m.resolveConfig(ctx, opts.RoutingRuleID, opts.Config)
	if err != nil {
		return Log{}, fmt.Errorf("loading webhook config: %w", err)
	}

	headers := deliveryHeaders(opts.LeadID, cfg.CustomHeaders)

	log, err := m.Store.InsertLog(ctx, Log{
		LeadID:         opts.LeadID,
		RoutingRuleID:  opts.RoutingRuleID,
		WebhookURL:     opts.WebhookURL,
		RequestHeaders: headers,
		RequestBody:    opts.Payload,
		AttemptNumber:  attempt,
		MaxAttempts:    cfg.MaxAttempts(),
		IsRetry:        opts.IsRetry,
		ParentLogID:    opts.ParentLogID,
		Status:         Pending,
	})
	if err != nil {
		return Log{}, fmt.Errorf("creating webhook log: %w", err)
	}

	outcome := m.Sender.Send(ctx, Request{
		URL:     opts.WebhookURL,
		Headers: headers,
		Body:    opts.Payload,
		Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
	})

	log, err = m.Store.FinishLog(ctx, log.ID, outcome)
	if err != nil {
		return Log{}, fmt.Errorf("updating webhook log: %w", err)
	}

	if outcome.Status == Success {
		if opts.IsRetry && m.Leads != nil {
			// a late success still counts: the lead leaves its error state
			if err := m.Leads.MarkSent(ctx, opts.LeadID, opts.WebhookURL, opts.ClientName, time.Now().UTC()); err != nil {
				return Log{}, fmt.Errorf("marking lead sent: %w", err)
			}
		}
		return log, nil
	}

	if cfg.RetryEnabled && attempt < cfg.MaxAttempts() {
		if err := m.scheduleRetry(ctx, opts, cfg, log.ID, attempt); err != nil {
			return Log{}, fmt.Errorf("scheduling retry: %w", err)
		}
		log.Status = Retrying
	}

	return log, nil
}

/* scheduleRetry enqueues the next attempt with exponential backoff and marks
 * the failed parent as retrying
 * The first retry waits the base delay; each one after multiplies once more
 */
func (m *Manager) scheduleRetry(ctx context.Context, opts SendOptions, cfg Config, parentLogID string, attempt int) error {
	next := attempt + 1

	_, err := m.Store.Enqueue(ctx, QueueEntry{
		LeadID:        opts.LeadID,
		RoutingRuleID: opts.RoutingRuleID,
		WebhookLogID:  parentLogID,
		Status:        QueuePending,
		Priority:      next,
		AttemptNumber: next,
		MaxAttempts:   cfg.MaxAttempts(),
		ScheduledAt:   time.Now().UTC().Add(RetryDelay(cfg, next)),
	})
	if err != nil {
		return fmt.Errorf("enqueuing retry: %w", err)
	}

	if err := m.Store.MarkLogRetrying(ctx, parentLogID); err != nil {
		return fmt.Errorf("marking log retrying: %w", err)
	}

	return nil
}

// RetryDelay computes the backoff before the given attempt number:
// delay_ms * multiplier^(attempt-2), so attempt 2 waits the base delay
func RetryDelay(cfg Config, attempt int) time.Duration {
	delay := float64(cfg.RetryDelayMS) * math.Pow(cfg.RetryBackoffMultiplier, float64(attempt-2))
	return time.Duration(delay) * time.Millisecond
}

/* Replay re-sends a previously logged webhook on operator request
 * The payload and destination are frozen at original send time; the new log
 * chains to the original exactly like an automatic retry
 * No deduplication is applied: replaying twice delivers twice
 */
func (m *Manager) Replay(ctx context.Context, logID string) (Log, error) {
	original, err := m.Store.LogByID(ctx, logID)
	if err != nil {
		return Log{}, fmt.Errorf("loading webhook log %s: %w", logID, err)
	}

	return m.Send(ctx, SendOptions{
		LeadID:        original.LeadID,
		RoutingRuleID: original.RoutingRuleID,
		WebhookURL:    original.WebhookURL,
		ClientName:    original.ClientName,
		Payload:       original.RequestBody,
		IsRetry:       true,
		ParentLogID:   &original.ID,
		AttemptNumber: original.AttemptNumber + 1,
	})
}

// Stats aggregates delivery outcomes for a rule over the trailing window
func (m *Manager) Stats(ctx context.Context, ruleID string, days int) (Stats, error) {
	if days <= 0 {
		days = defaultStatsDays
	}
	stats, err := m.Store.Stats(ctx, ruleID, days)
	if err != nil {
		return Stats{}, fmt.Errorf("fetching webhook stats: %w", err)
	}
	return stats, nil
}

// Logs returns a page of a rule's delivery logs, newest first
func (m *Manager) Logs(ctx context.Context, ruleID string, filter LogFilter) ([]Log, int, error) {
	logs, total, err := m.Store.ListLogs(ctx, ruleID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("fetching webhook logs: %w", err)
	}
	return logs, total, nil
}

// UpdateConfig stores a rule's delivery policy and refreshes the cache
func (m *Manager) UpdateConfig(ctx context.Context, cfg Config) (Config, error) {
	if cfg.RoutingRuleID == "" {
		return Config{}, fmt.Errorf("routing rule id cannot be empty")
	}

	// omitted JSON fields decode to zero; a zero timeout or delay would
	// stall every delivery for the rule
	if cfg.TimeoutMS <= 0 {
		cfg.TimeoutMS = DefaultTimeoutMS
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryDelayMS <= 0 {
		cfg.RetryDelayMS = DefaultRetryDelayMS
	}
	if cfg.RetryBackoffMultiplier <= 0 {
		cfg.RetryBackoffMultiplier = DefaultRetryBackoffMultiplier
	}

	saved, err := m.Store.UpsertConfig(ctx, cfg)
	if err != nil {
		return Config{}, fmt.Errorf("updating webhook config: %w", err)
	}

	if m.Configs != nil {
		m.Configs.Set(ctx, saved)
	}

	return saved, nil
}

func (m *Manager) resolveConfig(ctx context.Context, ruleID string, override *Config) (Config, error) {
	if override != nil {
		return *override, nil
	}

	if m.Configs != nil {
		if cfg, ok := m.Configs.Get(ctx, ruleID); ok {
			return cfg, nil
		}
	}

	cfg, err := m.Store.EnsureConfig(ctx, ruleID)
	if err != nil {
		return Config{}, err
	}

	if m.Configs != nil {
		m.Configs.Set(ctx, cfg)
	}

	return cfg, nil
}

/* deliveryHeaders merges system defaults with a rule's custom headers
 * Custom headers may overwrite the defaults but are never dropped
 */
func deliveryHeaders(leadID string, custom map[string]string) map[string]string {
	headers := map[string]string{
		"Content-Type":   "application/json",
		"User-Agent":     userAgent,
		headerLeadID:     leadID,
		headerFunnelHook: "true",
	}
	for key, value := range custom {
		headers[key] = value
	}
	return headers
}
