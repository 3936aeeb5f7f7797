package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/lead-router/lead"
	"github.com/marcelsud/lead-router/webhook"
)

// Handlers sets up the lead and delivery API routes
func Handlers(ctx context.Context, leadService lead.UseCase, webhookService webhook.UseCase, metricsHandler http.Handler, cronSecret string) *chi.Mux {
	logger := httplog.NewLogger("lead-router", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/leads", postLead(leadService).ServeHTTP)
		r.Get("/leads", getLeads(leadService).ServeHTTP)

		r.Get("/webhooks/logs", getLogs(webhookService).ServeHTTP)
		r.Get("/webhooks/stats", getStats(webhookService).ServeHTTP)
		r.Post("/webhooks/replay/{log_id}", postReplay(webhookService).ServeHTTP)
		r.Put("/webhooks/config/{rule_id}", putConfig(webhookService).ServeHTTP)

		// Called by the scheduler, not by clients
		r.Post("/cron/process-queue", postProcessQueue(webhookService, cronSecret).ServeHTTP)
	})

	return r
}
