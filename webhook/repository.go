package webhook

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by stores when a log, entry or config is absent
var ErrNotFound = errors.New("not found")

/* Small, focused interfaces following "The Go Way"
 * Interfaces abstract behavior, not things
 * Composed into Store for consumers that need the whole delivery state
 */

// ConfigStore provides access to per-rule delivery policies
type ConfigStore interface {
	/* EnsureConfig returns the rule's delivery policy, creating it with
	 * defaults on first access so it is never absent after the first
	 * delivery attempt for a rule
	 */
	EnsureConfig(ctx context.Context, ruleID string) (Config, error)
	UpsertConfig(ctx context.Context, cfg Config) (Config, error)
}

// LogFilter narrows and pages a log listing
type LogFilter struct {
	Status *Status
	Limit  int
	Offset int
}

// LogStore provides the audit trail of delivery attempts
type LogStore interface {
	InsertLog(ctx context.Context, log Log) (Log, error)
	/* FinishLog writes the attempt outcome onto a pending log and returns
	 * the updated record; logs are immutable once success or failed
	 */
	FinishLog(ctx context.Context, id string, out Outcome) (Log, error)
	// MarkLogRetrying flags a failed parent while its follow-up is queued
	MarkLogRetrying(ctx context.Context, id string) error
	LogByID(ctx context.Context, id string) (Log, error)
	// ListLogs returns a page of logs for a rule, newest first, plus the
	// unpaged total
	ListLogs(ctx context.Context, ruleID string, filter LogFilter) ([]Log, int, error)
	Stats(ctx context.Context, ruleID string, days int) (Stats, error)
}

// QueueStore provides the durable retry queue
type QueueStore interface {
	Enqueue(ctx context.Context, entry QueueEntry) (QueueEntry, error)
	/* DueEntries returns pending entries whose scheduled time has passed,
	 * ordered by priority then scheduled time, up to limit
	 */
	DueEntries(ctx context.Context, now time.Time, limit int) ([]QueueEntry, error)
	/* ClaimEntry atomically transitions pending -> processing
	 * Returns false when the entry was already claimed by a concurrent
	 * processor; that entry must be skipped, not retried
	 */
	ClaimEntry(ctx context.Context, id string, startedAt time.Time) (bool, error)
	CompleteEntry(ctx context.Context, id string, at time.Time) error
	FailEntry(ctx context.Context, id string, at time.Time, message string) error
}

/* Interface composition - combining small interfaces into larger ones
 * This is preferred over large monolithic interfaces
 */
type Store interface {
	ConfigStore
	LogStore
	QueueStore
}

/* LeadMarker flips a lead to sent when a delivery eventually succeeds
 * Implemented by the lead store; declared here so the delivery engine does
 * not depend on the lead domain
 */
type LeadMarker interface {
	MarkSent(ctx context.Context, leadID, sentTo, sentToClient string, at time.Time) error
}

/* ConfigCache is an optional read-through cache for delivery policies
 * Best effort: misses and errors fall back to the store
 */
type ConfigCache interface {
	Get(ctx context.Context, ruleID string) (Config, bool)
	Set(ctx context.Context, cfg Config)
	Invalidate(ctx context.Context, ruleID string)
}
