package lead

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marcelsud/lead-router/funnel"
	"github.com/marcelsud/lead-router/routing"
	"github.com/marcelsud/lead-router/webhook"
)

// ErrFunnelNotFound is returned when a submission names an unknown funnel
var ErrFunnelNotFound = errors.New("funnel not found")

// UseCase defines the business operations for lead capture and routing
type UseCase interface {
	Submit(ctx context.Context, in SubmitInput) (Lead, error)
	Route(ctx context.Context, leadID string) (RouteResult, error)
	List(ctx context.Context, funnelID string, limit, offset int) ([]Lead, error)
}

/* Deliverer is the slice of the delivery engine the router needs
 * Declared on the consumer side; satisfied by webhook.Manager
 */
type Deliverer interface {
	Send(ctx context.Context, opts webhook.SendOptions) (webhook.Log, error)
}

/* Service represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 */
type Service struct {
	Repo     Repository
	Rules    routing.Reader
	Webhooks Deliverer
}

// NewService creates a new lead service with dependency injection
func NewService(repo Repository, rules routing.Reader, webhooks Deliverer) *Service {
	return &Service{
		Repo:     repo,
		Rules:    rules,
		Webhooks: webhooks,
	}
}

// SubmitInput is one incoming form submission
type SubmitInput struct {
	FunnelID  string
	Variant   string
	Data      map[string]any
	UTMParams map[string]any
}

/* Submit validates and persists a new lead
 * When no variant was forced client-side, one is picked by weighted random
 * Routing is NOT triggered here: the caller fires it in the background so
 * the submitter always gets an immediate response
 */
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Lead, error) {
	if in.FunnelID == "" {
		return Lead{}, fmt.Errorf("funnel id cannot be empty")
	}
	if len(in.Data) == 0 {
		return Lead{}, fmt.Errorf("lead data cannot be empty")
	}

	exists, err := s.Repo.FunnelExists(ctx, in.FunnelID)
	if err != nil {
		return Lead{}, fmt.Errorf("checking funnel: %w", err)
	}
	if !exists {
		return Lead{}, ErrFunnelNotFound
	}

	variant := in.Variant
	if variant == "" {
		variants, err := s.Repo.FunnelVariants(ctx, in.FunnelID)
		if err != nil {
			return Lead{}, fmt.Errorf("loading funnel variants: %w", err)
		}
		if v, ok := funnel.Select(variants, ""); ok {
			variant = v.Key
		}
	}

	utm := in.UTMParams
	if utm == nil {
		utm = map[string]any{}
	}

	l, err := s.Repo.Insert(ctx, Lead{
		ID:        uuid.New().String(),
		FunnelID:  in.FunnelID,
		Variant:   variant,
		Data:      in.Data,
		UTMParams: utm,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Lead{}, fmt.Errorf("storing lead: %w", err)
	}

	return l, nil
}

// List returns leads for the dashboard, newest first
func (s *Service) List(ctx context.Context, funnelID string, limit, offset int) ([]Lead, error) {
	leads, err := s.Repo.ListByFunnel(ctx, funnelID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	return leads, nil
}
