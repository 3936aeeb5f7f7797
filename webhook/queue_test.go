package webhook_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/marcelsud/lead-router/webhook"
	"github.com/marcelsud/lead-router/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dueEntry(id string) webhook.QueueEntry {
	return webhook.QueueEntry{
		ID:            id,
		LeadID:        "lead-1",
		RoutingRuleID: "rule-1",
		WebhookLogID:  "log-1",
		Status:        webhook.QueuePending,
		Priority:      2,
		AttemptNumber: 2,
		MaxAttempts:   4,
		WebhookURL:    "https://crm.example.com/hook",
		ClientName:    "Acme CRM",
	}
}

func TestManager_ProcessQueue(t *testing.T) {
	ctx := context.Background()

	t.Run("processes a claimed entry end to end", func(t *testing.T) {
		store := mocks.NewStore(t)
		sender := mocks.NewSender(t)
		manager := webhook.NewManager(store, sender)

		entry := dueEntry("q-1")
		frozen := []byte(`{"email":"jo@example.com"}`)

		store.On("DueEntries", ctx, mock.AnythingOfType("time.Time"), 10).
			Return([]webhook.QueueEntry{entry}, nil)
		store.On("ClaimEntry", ctx, "q-1", mock.AnythingOfType("time.Time")).
			Return(true, nil)
		store.On("LogByID", ctx, "log-1").Return(webhook.Log{
			ID:            "log-1",
			LeadID:        "lead-1",
			RoutingRuleID: "rule-1",
			WebhookURL:    "https://crm.example.com/old-hook",
			RequestBody:   frozen,
			AttemptNumber: 1,
		}, nil)

		cfg := webhook.DefaultConfig("rule-1")
		cfg.RetryEnabled = false
		store.On("EnsureConfig", ctx, "rule-1").Return(cfg, nil)

		store.On("InsertLog", ctx, webhook.MatchLog(func(l webhook.Log) bool {
			// the payload is frozen but the URL comes from the rule
			return string(l.RequestBody) == string(frozen) &&
				l.WebhookURL == "https://crm.example.com/hook" &&
				l.IsRetry &&
				l.ParentLogID != nil && *l.ParentLogID == "log-1" &&
				l.AttemptNumber == 2
		})).Return(webhook.Log{ID: "log-2"}, nil)

		out := successOutcome()
		sender.On("Send", ctx, mock.AnythingOfType("webhook.Request")).Return(out)
		store.On("FinishLog", ctx, "log-2", out).Return(finishedLog("log-2", out), nil)
		store.On("CompleteEntry", ctx, "q-1", mock.AnythingOfType("time.Time")).
			Return(nil)

		processed, err := manager.ProcessQueue(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, processed)
	})

	t.Run("lost claim skips the entry", func(t *testing.T) {
		store := mocks.NewStore(t)
		sender := mocks.NewSender(t)
		manager := webhook.NewManager(store, sender)

		entry := dueEntry("q-1")
		store.On("DueEntries", ctx, mock.AnythingOfType("time.Time"), 10).
			Return([]webhook.QueueEntry{entry}, nil)
		store.On("ClaimEntry", ctx, "q-1", mock.AnythingOfType("time.Time")).
			Return(false, nil)

		processed, err := manager.ProcessQueue(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, processed)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("attempt past the budget fails the entry without sending", func(t *testing.T) {
		store := mocks.NewStore(t)
		sender := mocks.NewSender(t)
		manager := webhook.NewManager(store, sender)

		entry := dueEntry("q-1")
		entry.AttemptNumber = 5
		store.On("DueEntries", ctx, mock.AnythingOfType("time.Time"), 10).
			Return([]webhook.QueueEntry{entry}, nil)
		store.On("ClaimEntry", ctx, "q-1", mock.AnythingOfType("time.Time")).
			Return(true, nil)
		store.On("FailEntry", ctx, "q-1", mock.AnythingOfType("time.Time"), "max attempts exceeded").
			Return(nil)

		processed, err := manager.ProcessQueue(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, processed)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("entry failure is recorded and the batch continues", func(t *testing.T) {
		store := mocks.NewStore(t)
		sender := mocks.NewSender(t)
		manager := webhook.NewManager(store, sender)

		broken := dueEntry("q-1")
		healthy := dueEntry("q-2")
		healthy.WebhookLogID = "log-9"

		store.On("DueEntries", ctx, mock.AnythingOfType("time.Time"), 10).
			Return([]webhook.QueueEntry{broken, healthy}, nil)
		store.On("ClaimEntry", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
			Return(true, nil)

		// first entry: the parent log cannot be loaded
		store.On("LogByID", ctx, "log-1").
			Return(webhook.Log{}, fmt.Errorf("connection refused"))
		store.On("FailEntry", ctx, "q-1", mock.AnythingOfType("time.Time"),
			mock.MatchedBy(func(reason string) bool {
				return reason != ""
			})).Return(nil)

		// second entry goes through
		store.On("LogByID", ctx, "log-9").Return(webhook.Log{
			ID:            "log-9",
			LeadID:        "lead-1",
			RoutingRuleID: "rule-1",
			RequestBody:   []byte(`{}`),
			AttemptNumber: 1,
		}, nil)
		cfg := webhook.DefaultConfig("rule-1")
		cfg.RetryEnabled = false
		store.On("EnsureConfig", ctx, "rule-1").Return(cfg, nil)
		store.On("InsertLog", ctx, mock.AnythingOfType("webhook.Log")).
			Return(webhook.Log{ID: "log-10"}, nil)
		out := successOutcome()
		sender.On("Send", ctx, mock.AnythingOfType("webhook.Request")).Return(out)
		store.On("FinishLog", ctx, "log-10", out).Return(finishedLog("log-10", out), nil)
		store.On("CompleteEntry", ctx, "q-2", mock.AnythingOfType("time.Time")).
			Return(nil)

		processed, err := manager.ProcessQueue(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, processed)
	})

	t.Run("failed delivery still completes the entry", func(t *testing.T) {
		store := mocks.NewStore(t)
		sender := mocks.NewSender(t)
		manager := webhook.NewManager(store, sender)

		entry := dueEntry("q-1")
		entry.AttemptNumber = 4
		store.On("DueEntries", ctx, mock.AnythingOfType("time.Time"), 10).
			Return([]webhook.QueueEntry{entry}, nil)
		store.On("ClaimEntry", ctx, "q-1", mock.AnythingOfType("time.Time")).
			Return(true, nil)
		store.On("LogByID", ctx, "log-1").Return(webhook.Log{
			ID:            "log-1",
			LeadID:        "lead-1",
			RoutingRuleID: "rule-1",
			RequestBody:   []byte(`{}`),
			AttemptNumber: 3,
		}, nil)
		store.On("EnsureConfig", ctx, "rule-1").
			Return(webhook.DefaultConfig("rule-1"), nil)
		store.On("InsertLog", ctx, mock.AnythingOfType("webhook.Log")).
			Return(webhook.Log{ID: "log-4"}, nil)

		out := failedOutcome()
		sender.On("Send", ctx, mock.AnythingOfType("webhook.Request")).Return(out)
		final := finishedLog("log-4", out)
		final.AttemptNumber = 4
		store.On("FinishLog", ctx, "log-4", out).Return(final, nil)
		store.On("CompleteEntry", ctx, "q-1", mock.AnythingOfType("time.Time")).
			Return(nil)

		processed, err := manager.ProcessQueue(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, processed)
		// the last attempt failed for good: nothing new is queued
		store.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
	})

	t.Run("due entries error aborts the batch", func(t *testing.T) {
		store := mocks.NewStore(t)
		sender := mocks.NewSender(t)
		manager := webhook.NewManager(store, sender)

		store.On("DueEntries", ctx, mock.AnythingOfType("time.Time"), 10).
			Return(nil, fmt.Errorf("connection refused"))

		processed, err := manager.ProcessQueue(ctx)

		require.Error(t, err)
		assert.Equal(t, 0, processed)
	})

	t.Run("respects a custom batch size", func(t *testing.T) {
		store := mocks.NewStore(t)
		sender := mocks.NewSender(t)
		manager := webhook.NewManager(store, sender)
		manager.BatchSize = 3

		store.On("DueEntries", ctx, mock.AnythingOfType("time.Time"), 3).
			Return([]webhook.QueueEntry{}, nil)

		processed, err := manager.ProcessQueue(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, processed)
	})
}
