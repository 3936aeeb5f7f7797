package lead

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/marcelsud/lead-router/routing"
	"github.com/marcelsud/lead-router/webhook"
	"github.com/marcelsud/lead-router/webhook/payload"
)

// Routing failure messages are part of the dashboard contract
const (
	MsgLeadNotFound = "Lead not found"
	MsgNoRules      = "No routing rules defined"
	MsgNoMatch      = "No routing rule matched"
)

// RouteResult is the routing outcome reported to the background caller
type RouteResult struct {
	Success bool
	Client  string
	Error   string
}

/* Route forwards a newly captured lead to the first matching rule's webhook
 * State machine per lead, terminal states sent / error:
 *   no rules        -> error "No routing rules defined"
 *   no rule matches -> error "No routing rule matched"
 *   delivery ok     -> sent, with sent_to / sent_to_client / sent_at
 *   delivery fails  -> error with the transport message; retries are already
 *                      queued by the delivery engine and later update the
 *                      log chain (and, on eventual success, the lead)
 * A missing lead is a caller-visible no-op, not a crash
 * Only store failures are returned as errors; routing failures are encoded
 * into the lead row and the result
 */
func (s *Service) Route(ctx context.Context, leadID string) (RouteResult, error) {
	l, err := s.Repo.Get(ctx, leadID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RouteResult{Error: MsgLeadNotFound}, nil
		}
		return RouteResult{}, fmt.Errorf("loading lead: %w", err)
	}

	rules, err := s.Rules.ActiveByFunnel(ctx, l.FunnelID)
	if err != nil {
		return RouteResult{}, fmt.Errorf("fetching routing rules: %w", err)
	}

	if len(rules) == 0 {
		if err := s.Repo.MarkError(ctx, l.ID, MsgNoRules); err != nil {
			return RouteResult{}, fmt.Errorf("marking lead error: %w", err)
		}
		return RouteResult{Error: MsgNoRules}, nil
	}

	rule, ok := routing.Select(rules, l.Data)
	if !ok {
		if err := s.Repo.MarkError(ctx, l.ID, MsgNoMatch); err != nil {
			return RouteResult{}, fmt.Errorf("marking lead error: %w", err)
		}
		return RouteResult{Error: MsgNoMatch}, nil
	}

	body, err := payload.Payload{
		Fields:    l.Data,
		UTM:       l.UTMParams,
		Timestamp: l.CreatedAt,
		Funnel:    l.FunnelSlug,
		Variant:   l.Variant,
		LeadID:    l.ID,
	}.Bytes()
	if err != nil {
		return RouteResult{}, fmt.Errorf("building payload: %w", err)
	}

	// first attempt is synchronous; failures hand off to the retry queue
	// inside the delivery engine
	log, err := s.Webhooks.Send(ctx, webhook.SendOptions{
		LeadID:        l.ID,
		RoutingRuleID: rule.ID,
		WebhookURL:    rule.WebhookURL,
		ClientName:    rule.ClientName,
		Payload:       body,
	})
	if err != nil {
		return RouteResult{}, fmt.Errorf("sending webhook: %w", err)
	}

	if log.Status == webhook.Success {
		if err := s.Repo.MarkSent(ctx, l.ID, rule.WebhookURL, rule.ClientName, time.Now().UTC()); err != nil {
			return RouteResult{}, fmt.Errorf("marking lead sent: %w", err)
		}
		return RouteResult{Success: true, Client: rule.ClientName}, nil
	}

	msg := "webhook delivery failed"
	if log.ErrorMessage != nil {
		msg = *log.ErrorMessage
	}
	if err := s.Repo.MarkError(ctx, l.ID, msg); err != nil {
		return RouteResult{}, fmt.Errorf("marking lead error: %w", err)
	}

	return RouteResult{Error: msg}, nil
}
