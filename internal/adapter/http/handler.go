package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"campaign-advisor/internal/config/configs"
	"campaign-advisor/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the advisor use case, a logger for structured logging and the
// upload size limit. Routes are registered on a chi.Router.
type Handler struct {
	svc       port.AdvisorUseCase
	logger    *slog.Logger
	maxUpload int64
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.AdvisorUseCase, cfg configs.HTTP, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger, maxUpload: cfg.MaxUploadBytes}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", h.handleAnalyze)
		r.Post("/analyze/chart", h.handleAnalyzeChart)
		r.Get("/campaigns/actions", h.handleStoredActions)
		r.Post("/insights", h.handleInsight)
		r.Get("/thresholds", h.handleThresholds)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleThresholds(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Thresholds())
}
