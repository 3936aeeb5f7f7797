package webhook

import (
	"context"
	"fmt"
	"time"
)

/* ProcessQueue drains due retry entries, oldest and highest-priority first
 * Invoked periodically by an external scheduler and safe to invoke
 * concurrently: the atomic pending -> processing claim guarantees an entry
 * is sent at most once even when invocations overlap
 * Per-entry failures are recorded on the entry, never abort the batch
 * Returns the number of entries processed
 */
func (m *Manager) ProcessQueue(ctx context.Context) (int, error) {
	batch := m.BatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}

	entries, err := m.Store.DueEntries(ctx, time.Now().UTC(), batch)
	if err != nil {
		return 0, fmt.Errorf("fetching due queue entries: %w", err)
	}

	processed := 0
	for _, entry := range entries {
		claimed, err := m.Store.ClaimEntry(ctx, entry.ID, time.Now().UTC())
		if err != nil || !claimed {
			// already claimed by an overlapping invocation, or unreadable;
			// either way this entry belongs to someone else now
			continue
		}

		if entry.AttemptNumber > entry.MaxAttempts {
			// hard stop: never send past the attempt budget
			_ = m.Store.FailEntry(ctx, entry.ID, time.Now().UTC(), "max attempts exceeded")
			continue
		}

		if err := m.processEntry(ctx, entry); err != nil {
			_ = m.Store.FailEntry(ctx, entry.ID, time.Now().UTC(), err.Error())
			continue
		}

		// completed means processed; the send outcome lives in the chained log
		if err := m.Store.CompleteEntry(ctx, entry.ID, time.Now().UTC()); err != nil {
			return processed, fmt.Errorf("completing queue entry %s: %w", entry.ID, err)
		}
		processed++
	}

	return processed, nil
}

/* processEntry re-sends one claimed entry
 * The payload is the one frozen in the chain's originating log, never the
 * lead's current data; the destination comes from the rule so URL edits
 * made between retries take effect
 */
func (m *Manager) processEntry(ctx context.Context, entry QueueEntry) error {
	parent, err := m.Store.LogByID(ctx, entry.WebhookLogID)
	if err != nil {
		return fmt.Errorf("loading parent log: %w", err)
	}

	url := entry.WebhookURL
	if url == "" {
		url = parent.WebhookURL
	}

	_, err = m.Send(ctx, SendOptions{
		LeadID:        entry.LeadID,
		RoutingRuleID: entry.RoutingRuleID,
		WebhookURL:    url,
		ClientName:    entry.ClientName,
		Payload:       parent.RequestBody,
		IsRetry:       true,
		ParentLogID:   &entry.WebhookLogID,
		AttemptNumber: entry.AttemptNumber,
	})
	if err != nil {
		return fmt.Errorf("sending queued webhook: %w", err)
	}

	return nil
}
