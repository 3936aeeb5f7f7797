package lead_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/marcelsud/lead-router/lead"
	"github.com/marcelsud/lead-router/lead/mocks"
	"github.com/marcelsud/lead-router/routing"
	routingmocks "github.com/marcelsud/lead-router/routing/mocks"
	"github.com/marcelsud/lead-router/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func capturedLead() lead.Lead {
	return lead.Lead{
		ID:         "lead-1",
		FunnelID:   "funnel-1",
		FunnelSlug: "solar-quotes",
		Variant:    "a",
		Data:       map[string]any{"email": "jo@example.com", "budget": float64(75000)},
		UTMParams:  map[string]any{"utm_source": "google"},
		Status:     lead.Pending,
		CreatedAt:  time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func premiumRule() routing.Rule {
	return routing.Rule{
		ID:       "rule-1",
		FunnelID: "funnel-1",
		Priority: 1,
		Condition: routing.Condition{
			Field:    "budget",
			Operator: routing.GreaterThan,
			Value:    float64(50000),
		},
		WebhookURL: "https://premium.example.com/hook",
		ClientName: "Premium CRM",
		Active:     true,
	}
}

func newRouterFixture(t *testing.T) (*mocks.Repository, *routingmocks.Reader, *mocks.Deliverer, *lead.Service) {
	repo := mocks.NewRepository(t)
	rules := routingmocks.NewReader(t)
	deliverer := mocks.NewDeliverer(t)
	return repo, rules, deliverer, lead.NewService(repo, rules, deliverer)
}

func TestService_Route(t *testing.T) {
	ctx := context.Background()

	t.Run("matched rule delivers and marks the lead sent", func(t *testing.T) {
		repo, rules, deliverer, service := newRouterFixture(t)
		l := capturedLead()

		repo.On("Get", ctx, "lead-1").Return(l, nil)
		rules.On("ActiveByFunnel", ctx, "funnel-1").
			Return([]routing.Rule{premiumRule()}, nil)

		deliverer.On("Send", ctx, mock.MatchedBy(func(opts webhook.SendOptions) bool {
			var body map[string]any
			if err := json.Unmarshal(opts.Payload, &body); err != nil {
				return false
			}
			return opts.LeadID == "lead-1" &&
				opts.RoutingRuleID == "rule-1" &&
				opts.WebhookURL == "https://premium.example.com/hook" &&
				opts.ClientName == "Premium CRM" &&
				body["lead_id"] == "lead-1" &&
				body["funnel"] == "solar-quotes" &&
				body["variant"] == "a"
		})).Return(webhook.Log{ID: "log-1", Status: webhook.Success}, nil)

		repo.On("MarkSent", ctx, "lead-1", "https://premium.example.com/hook",
			"Premium CRM", mock.AnythingOfType("time.Time")).Return(nil)

		result, err := service.Route(ctx, "lead-1")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Premium CRM", result.Client)
		assert.Empty(t, result.Error)
	})

	t.Run("first matching rule by priority wins", func(t *testing.T) {
		repo, rules, deliverer, service := newRouterFixture(t)
		l := capturedLead()

		catchAll := routing.Rule{
			ID:       "rule-2",
			FunnelID: "funnel-1",
			Priority: 2,
			Condition: routing.Condition{
				Field:    "email",
				Operator: routing.Contains,
				Value:    "@",
			},
			WebhookURL: "https://standard.example.com/hook",
			ClientName: "Standard CRM",
			Active:     true,
		}

		repo.On("Get", ctx, "lead-1").Return(l, nil)
		rules.On("ActiveByFunnel", ctx, "funnel-1").
			Return([]routing.Rule{premiumRule(), catchAll}, nil)

		deliverer.On("Send", ctx, mock.MatchedBy(func(opts webhook.SendOptions) bool {
			return opts.RoutingRuleID == "rule-1"
		})).Return(webhook.Log{Status: webhook.Success}, nil)

		repo.On("MarkSent", ctx, "lead-1", "https://premium.example.com/hook",
			"Premium CRM", mock.AnythingOfType("time.Time")).Return(nil)

		result, err := service.Route(ctx, "lead-1")

		require.NoError(t, err)
		assert.Equal(t, "Premium CRM", result.Client)
	})

	t.Run("missing lead is reported, not an error", func(t *testing.T) {
		repo, _, _, service := newRouterFixture(t)

		repo.On("Get", ctx, "nope").Return(lead.Lead{}, lead.ErrNotFound)

		result, err := service.Route(ctx, "nope")

		require.NoError(t, err)
		assert.Equal(t, "Lead not found", result.Error)
	})

	t.Run("no rules defined", func(t *testing.T) {
		repo, rules, _, service := newRouterFixture(t)
		l := capturedLead()

		repo.On("Get", ctx, "lead-1").Return(l, nil)
		rules.On("ActiveByFunnel", ctx, "funnel-1").Return([]routing.Rule{}, nil)
		repo.On("MarkError", ctx, "lead-1", "No routing rules defined").Return(nil)

		result, err := service.Route(ctx, "lead-1")

		require.NoError(t, err)
		assert.Equal(t, "No routing rules defined", result.Error)
		assert.False(t, result.Success)
	})

	t.Run("no rule matched", func(t *testing.T) {
		repo, rules, _, service := newRouterFixture(t)
		l := capturedLead()
		l.Data = map[string]any{"email": "jo@example.com", "budget": float64(1000)}

		repo.On("Get", ctx, "lead-1").Return(l, nil)
		rules.On("ActiveByFunnel", ctx, "funnel-1").
			Return([]routing.Rule{premiumRule()}, nil)
		repo.On("MarkError", ctx, "lead-1", "No routing rule matched").Return(nil)

		result, err := service.Route(ctx, "lead-1")

		require.NoError(t, err)
		assert.Equal(t, "No routing rule matched", result.Error)
	})

	t.Run("failed delivery marks the lead with the transport message", func(t *testing.T) {
		repo, rules, deliverer, service := newRouterFixture(t)
		l := capturedLead()

		repo.On("Get", ctx, "lead-1").Return(l, nil)
		rules.On("ActiveByFunnel", ctx, "funnel-1").
			Return([]routing.Rule{premiumRule()}, nil)

		msg := "Request timeout after 10000ms"
		deliverer.On("Send", ctx, mock.AnythingOfType("webhook.SendOptions")).
			Return(webhook.Log{Status: webhook.Retrying, ErrorMessage: &msg}, nil)

		repo.On("MarkError", ctx, "lead-1", msg).Return(nil)

		result, err := service.Route(ctx, "lead-1")

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, msg, result.Error)
	})

	t.Run("failed delivery without a message falls back", func(t *testing.T) {
		repo, rules, deliverer, service := newRouterFixture(t)
		l := capturedLead()

		repo.On("Get", ctx, "lead-1").Return(l, nil)
		rules.On("ActiveByFunnel", ctx, "funnel-1").
			Return([]routing.Rule{premiumRule()}, nil)
		deliverer.On("Send", ctx, mock.AnythingOfType("webhook.SendOptions")).
			Return(webhook.Log{Status: webhook.Failed}, nil)
		repo.On("MarkError", ctx, "lead-1", "webhook delivery failed").Return(nil)

		result, err := service.Route(ctx, "lead-1")

		require.NoError(t, err)
		assert.Equal(t, "webhook delivery failed", result.Error)
	})
}
