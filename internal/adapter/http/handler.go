package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"adpace/internal/core/port"
	"adpace/internal/telemetry"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the usecase to execute business logic, the sheet
// importer for manual re-imports and a logger for structured logging.
// Routes are registered on a chi.Router.
type Handler struct {
	svc      port.BudgetUseCase
	importer port.SheetImporter
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. The importer
// may be nil when no sheet directory is configured; the import endpoint
// then answers 503. The metrics may be nil in tests.
func NewHandler(svc port.BudgetUseCase, importer port.SheetImporter, metrics *telemetry.Metrics, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, importer: importer, logger: logger}
	r := chi.NewRouter()

	if metrics != nil {
		r.Use(metrics.Middleware)
		r.Handle("/metrics", metrics.Handler())
	}
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Get("/tracking", h.handleTracking)
			r.Route("/{campaignID}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Put("/budget", h.handleUpdateBudget)
				r.Post("/spend", h.handleRecordSpend)
				r.Post("/pauses", h.handleAddPauseWindow)
				r.Delete("/pauses/{windowID}", h.handleRemovePauseWindow)
				r.Get("/forecast", h.handleForecast)
				r.Get("/alerts", h.handleCheckAlerts)
				r.Post("/simulate", h.handleSimulate)
			})
		})
		r.Get("/overview", h.handleOverview)
		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", h.handleListAlerts)
			r.Post("/sweep", h.handleSweepAlerts)
			r.Post("/{alertID}/read", h.handleMarkAlertRead)
		})
		r.Post("/import", h.handleImport)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v with the given status. Encoding failures are only
// logged; the status line is already on the wire at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps usecase errors onto HTTP statuses. Validation failures
// become 400, missing entities 404, everything else is logged and
// answered with a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrCampaignNotFound),
		errors.Is(err, port.ErrPauseWindowNotFound),
		errors.Is(err, port.ErrAlertNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func campaignID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "campaignID"), 10, 64)
}

// parseDay reads a calendar day in YYYY-MM-DD form.
func parseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
