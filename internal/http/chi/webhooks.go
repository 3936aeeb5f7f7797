package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/lead-router/webhook"
)

type logResponse struct {
	ID             string            `json:"id"`
	LeadID         string            `json:"lead_id"`
	RoutingRuleID  string            `json:"routing_rule_id"`
	WebhookURL     string            `json:"webhook_url"`
	RequestHeaders map[string]string `json:"request_headers"`
	RequestBody    json.RawMessage   `json:"request_body"`
	ResponseStatus *int              `json:"response_status"`
	ResponseBody   *string           `json:"response_body"`
	DurationMS     *int64            `json:"duration_ms"`
	AttemptNumber  int               `json:"attempt_number"`
	MaxAttempts    int               `json:"max_attempts"`
	IsRetry        bool              `json:"is_retry"`
	ParentLogID    *string           `json:"parent_log_id"`
	Status         string            `json:"status"`
	ErrorMessage   *string           `json:"error_message"`
	ErrorType      *string           `json:"error_type"`
	CreatedAt      time.Time         `json:"created_at"`
}

type logListResponse struct {
	Data  []logResponse `json:"data"`
	Total int           `json:"total"`
}

type configRequest struct {
	CustomHeaders          map[string]string `json:"custom_headers"`
	TimeoutMS              int               `json:"timeout_ms"`
	RetryEnabled           bool              `json:"retry_enabled"`
	MaxRetries             int               `json:"max_retries"`
	RetryDelayMS           int               `json:"retry_delay_ms"`
	RetryBackoffMultiplier float64           `json:"retry_backoff_multiplier"`
}

type processQueueResponse struct {
	Success   bool `json:"success"`
	Processed int  `json:"processed"`
}

func toLogResponse(l webhook.Log) logResponse {
	var errType *string
	if l.ErrorType != nil {
		s := l.ErrorType.String()
		errType = &s
	}
	return logResponse{
		ID:             l.ID,
		LeadID:         l.LeadID,
		RoutingRuleID:  l.RoutingRuleID,
		WebhookURL:     l.WebhookURL,
		RequestHeaders: l.RequestHeaders,
		RequestBody:    l.RequestBody,
		ResponseStatus: l.ResponseStatus,
		ResponseBody:   l.ResponseBody,
		DurationMS:     l.DurationMS,
		AttemptNumber:  l.AttemptNumber,
		MaxAttempts:    l.MaxAttempts,
		IsRetry:        l.IsRetry,
		ParentLogID:    l.ParentLogID,
		Status:         l.Status.String(),
		ErrorMessage:   l.ErrorMessage,
		ErrorType:      errType,
		CreatedAt:      l.CreatedAt,
	}
}

// getLogs handles GET /v1/webhooks/logs?routing_rule_id=&status=&limit=&offset=
func getLogs(webhookService webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ruleID := r.URL.Query().Get("routing_rule_id")
		if ruleID == "" {
			http.Error(w, "routing_rule_id is required", http.StatusBadRequest)
			return
		}

		filter := webhook.LogFilter{
			Limit:  queryInt(r, "limit", 50),
			Offset: queryInt(r, "offset", 0),
		}
		if raw := r.URL.Query().Get("status"); raw != "" {
			status := webhook.NewStatus(raw)
			filter.Status = &status
		}

		logs, total, err := webhookService.Logs(r.Context(), ruleID, filter)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		result := logListResponse{
			Data:  make([]logResponse, 0, len(logs)),
			Total: total,
		}
		for _, l := range logs {
			result.Data = append(result.Data, toLogResponse(l))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// getStats handles GET /v1/webhooks/stats?routing_rule_id=&days=
func getStats(webhookService webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ruleID := r.URL.Query().Get("routing_rule_id")
		if ruleID == "" {
			http.Error(w, "routing_rule_id is required", http.StatusBadRequest)
			return
		}

		stats, err := webhookService.Stats(r.Context(), ruleID, queryInt(r, "days", 7))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// postReplay handles POST /v1/webhooks/replay/{log_id}
// Replays are synchronous: the caller is an operator waiting for the result
func postReplay(webhookService webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logID := chi.URLParam(r, "log_id")
		if logID == "" {
			http.Error(w, "log_id is required", http.StatusBadRequest)
			return
		}

		log, err := webhookService.Replay(r.Context(), logID)
		if err != nil {
			if errors.Is(err, webhook.ErrNotFound) {
				http.Error(w, "log not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(toLogResponse(log)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// putConfig handles PUT /v1/webhooks/config/{rule_id}
func putConfig(webhookService webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ruleID := chi.URLParam(r, "rule_id")
		if ruleID == "" {
			http.Error(w, "rule_id is required", http.StatusBadRequest)
			return
		}

		var cr configRequest
		if err := json.NewDecoder(r.Body).Decode(&cr); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		cfg, err := webhookService.UpdateConfig(r.Context(), webhook.Config{
			RoutingRuleID:          ruleID,
			CustomHeaders:          cr.CustomHeaders,
			TimeoutMS:              cr.TimeoutMS,
			RetryEnabled:           cr.RetryEnabled,
			MaxRetries:             cr.MaxRetries,
			RetryDelayMS:           cr.RetryDelayMS,
			RetryBackoffMultiplier: cr.RetryBackoffMultiplier,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(configRequest{
			CustomHeaders:          cfg.CustomHeaders,
			TimeoutMS:              cfg.TimeoutMS,
			RetryEnabled:           cfg.RetryEnabled,
			MaxRetries:             cfg.MaxRetries,
			RetryDelayMS:           cfg.RetryDelayMS,
			RetryBackoffMultiplier: cfg.RetryBackoffMultiplier,
		}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// postProcessQueue handles POST /v1/cron/process-queue
// Guarded by a shared secret so only the scheduler can drain the queue
func postProcessQueue(webhookService webhook.UseCase, cronSecret string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+cronSecret {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		processed, err := webhookService.ProcessQueue(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(processQueueResponse{
			Success:   true,
			Processed: processed,
		}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}
