package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/marcelsud/lead-router/lead"
)

/* HTTP layer DTOs for the lead API
 * Separate from domain entities to avoid leaking internal structure
 */

type leadRequest struct {
	FunnelID  string         `json:"funnel_id"`
	Variant   string         `json:"variant"`
	Data      map[string]any `json:"data"`
	UTMParams map[string]any `json:"utm_params"`
}

type leadSubmitResponse struct {
	Success bool   `json:"success"`
	LeadID  string `json:"lead_id"`
	Variant string `json:"variant"`
}

type leadResponse struct {
	ID           string         `json:"id"`
	FunnelID     string         `json:"funnel_id"`
	FunnelSlug   string         `json:"funnel_slug"`
	Variant      string         `json:"variant"`
	Status       string         `json:"status"`
	Data         map[string]any `json:"data"`
	UTMParams    map[string]any `json:"utm_params"`
	SentTo       *string        `json:"sent_to"`
	SentToClient *string        `json:"sent_to_client"`
	ErrorMessage *string        `json:"error_message"`
	SentAt       *time.Time     `json:"sent_at"`
	CreatedAt    time.Time      `json:"created_at"`
}

// postLead handles POST /v1/leads
// Responds as soon as the lead is stored; routing runs in the background so
// the submitter never waits on a slow destination
func postLead(leadService lead.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var lr leadRequest
		if err := json.NewDecoder(r.Body).Decode(&lr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		l, err := leadService.Submit(r.Context(), lead.SubmitInput{
			FunnelID:  lr.FunnelID,
			Variant:   lr.Variant,
			Data:      lr.Data,
			UTMParams: lr.UTMParams,
		})
		if err != nil {
			if errors.Is(err, lead.ErrFunnelNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Detached from the request context: the response below must not
		// cancel the delivery
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			_, _ = leadService.Route(ctx, l.ID)
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(leadSubmitResponse{
			Success: true,
			LeadID:  l.ID,
			Variant: l.Variant,
		}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// getLeads handles GET /v1/leads?funnel_id=&limit=&offset=
func getLeads(leadService lead.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		funnelID := r.URL.Query().Get("funnel_id")
		limit := queryInt(r, "limit", 50)
		offset := queryInt(r, "offset", 0)

		leads, err := leadService.List(r.Context(), funnelID, limit, offset)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		result := make([]leadResponse, 0, len(leads))
		for _, l := range leads {
			result = append(result, leadResponse{
				ID:           l.ID,
				FunnelID:     l.FunnelID,
				FunnelSlug:   l.FunnelSlug,
				Variant:      l.Variant,
				Status:       l.Status.String(),
				Data:         l.Data,
				UTMParams:    l.UTMParams,
				SentTo:       l.SentTo,
				SentToClient: l.SentToClient,
				ErrorMessage: l.ErrorMessage,
				SentAt:       l.SentAt,
				CreatedAt:    l.CreatedAt,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
