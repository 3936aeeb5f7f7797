//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/marcelsud/lead-router/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_QueueLifecycle_Integration(t *testing.T) {
	ctx := context.Background()

	container, cleanup := SetupPostgresContainer(t, ctx)
	defer cleanup()

	CreateTestSchema(t, ctx, container.DB)
	repo := &Repository{DB: container.DB}

	t.Run("enqueue, claim once, complete", func(t *testing.T) {
		CleanupDatabase(t, ctx, container.DB)
		SeedRoutingRule(t, ctx, container.DB, "rule-1", "https://crm.example.com/hook", "Acme CRM")

		log, err := repo.InsertLog(ctx, webhook.Log{
			LeadID:        "lead-1",
			RoutingRuleID: "rule-1",
			WebhookURL:    "https://crm.example.com/hook",
			RequestBody:   []byte(`{"email":"jo@example.com"}`),
			AttemptNumber: 1,
			MaxAttempts:   4,
			Status:        webhook.Pending,
		})
		require.NoError(t, err)

		entry, err := repo.Enqueue(ctx, webhook.QueueEntry{
			LeadID:        "lead-1",
			RoutingRuleID: "rule-1",
			WebhookLogID:  log.ID,
			Status:        webhook.QueuePending,
			Priority:      2,
			AttemptNumber: 2,
			MaxAttempts:   4,
			ScheduledAt:   time.Now().Add(-time.Second),
		})
		require.NoError(t, err)

		due, err := repo.DueEntries(ctx, time.Now(), 10)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, "https://crm.example.com/hook", due[0].WebhookURL)
		assert.Equal(t, "Acme CRM", due[0].ClientName)

		claimed, err := repo.ClaimEntry(ctx, entry.ID, time.Now())
		require.NoError(t, err)
		assert.True(t, claimed)

		// second claim must lose
		claimed, err = repo.ClaimEntry(ctx, entry.ID, time.Now())
		require.NoError(t, err)
		assert.False(t, claimed)

		require.NoError(t, repo.CompleteEntry(ctx, entry.ID, time.Now()))

		due, err = repo.DueEntries(ctx, time.Now(), 10)
		require.NoError(t, err)
		assert.Empty(t, due)
	})

	t.Run("due entries come back in priority order", func(t *testing.T) {
		CleanupDatabase(t, ctx, container.DB)
		SeedRoutingRule(t, ctx, container.DB, "rule-1", "https://crm.example.com/hook", "Acme CRM")

		for _, attempt := range []int{3, 2} {
			log, err := repo.InsertLog(ctx, webhook.Log{
				LeadID:        "lead-1",
				RoutingRuleID: "rule-1",
				WebhookURL:    "https://crm.example.com/hook",
				RequestBody:   []byte(`{}`),
				AttemptNumber: attempt - 1,
				MaxAttempts:   4,
				Status:        webhook.Failed,
			})
			require.NoError(t, err)

			_, err = repo.Enqueue(ctx, webhook.QueueEntry{
				LeadID:        "lead-1",
				RoutingRuleID: "rule-1",
				WebhookLogID:  log.ID,
				Status:        webhook.QueuePending,
				Priority:      attempt,
				AttemptNumber: attempt,
				MaxAttempts:   4,
				ScheduledAt:   time.Now().Add(-time.Minute),
			})
			require.NoError(t, err)
		}

		due, err := repo.DueEntries(ctx, time.Now(), 10)
		require.NoError(t, err)
		require.Len(t, due, 2)
		assert.Equal(t, 2, due[0].Priority)
		assert.Equal(t, 3, due[1].Priority)
	})
}

func TestRepository_ConfigAndStats_Integration(t *testing.T) {
	ctx := context.Background()

	container, cleanup := SetupPostgresContainer(t, ctx)
	defer cleanup()

	CreateTestSchema(t, ctx, container.DB)
	repo := &Repository{DB: container.DB}

	t.Run("ensure config creates defaults once", func(t *testing.T) {
		CleanupDatabase(t, ctx, container.DB)

		first, err := repo.EnsureConfig(ctx, "rule-1")
		require.NoError(t, err)
		assert.Equal(t, webhook.DefaultTimeoutMS, first.TimeoutMS)

		second, err := repo.EnsureConfig(ctx, "rule-1")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("stats aggregate the trailing window", func(t *testing.T) {
		CleanupDatabase(t, ctx, container.DB)

		for _, status := range []webhook.Status{webhook.Success, webhook.Success, webhook.Failed} {
			log, err := repo.InsertLog(ctx, webhook.Log{
				LeadID:        "lead-1",
				RoutingRuleID: "rule-1",
				WebhookURL:    "https://crm.example.com/hook",
				RequestBody:   []byte(`{}`),
				AttemptNumber: 1,
				MaxAttempts:   4,
				Status:        webhook.Pending,
			})
			require.NoError(t, err)

			out := webhook.Outcome{Status: status, DurationMS: 100}
			if status == webhook.Failed {
				msg := "HTTP 500: Internal Server Error"
				et := webhook.HTTPError
				out.ErrorMessage = &msg
				out.ErrorType = &et
			}
			_, err = repo.FinishLog(ctx, log.ID, out)
			require.NoError(t, err)
		}

		stats, err := repo.Stats(ctx, "rule-1", 7)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalCalls)
		assert.Equal(t, int64(2), stats.SuccessCalls)
		assert.InDelta(t, 66.66, stats.SuccessRate, 0.1)
	})
}
