package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adpace/internal/core/domain"
)

// handleListAlerts returns persisted alerts, optionally narrowed by the
// `campaign_id` and `unread` query parameters.
func (h *Handler) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	var f domain.AlertFilter
	q := r.URL.Query()
	if cid := q.Get("campaign_id"); cid != "" {
		id, err := strconv.ParseInt(cid, 10, 64)
		if err != nil {
			http.Error(w, "invalid campaign_id", http.StatusBadRequest)
			return
		}
		f.CampaignID = &id
	}
	if unread := q.Get("unread"); unread != "" {
		b, err := strconv.ParseBool(unread)
		if err != nil {
			http.Error(w, "invalid unread flag", http.StatusBadRequest)
			return
		}
		f.UnreadOnly = b
	}

	alerts, err := h.svc.ListAlerts(r.Context(), f)
	if err != nil {
		h.writeError(w, "list alerts", err)
		return
	}
	h.writeJSON(w, http.StatusOK, alerts)
}

// handleMarkAlertRead acknowledges one persisted alert.
func (h *Handler) handleMarkAlertRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "alertID"))
	if err != nil {
		http.Error(w, "invalid alert id", http.StatusBadRequest)
		return
	}
	if err := h.svc.MarkAlertRead(r.Context(), id); err != nil {
		h.writeError(w, "mark alert read", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSweepAlerts runs one alert sweep over all running campaigns and
// reports how many alerts were stored.
func (h *Handler) handleSweepAlerts(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.SweepAlerts(r.Context())
	if err != nil {
		h.writeError(w, "sweep alerts", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int{"inserted": n})
}

// handleImport re-reads the configured budget sheet directory. Without a
// configured importer the endpoint answers 503.
func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	if h.importer == nil {
		http.Error(w, "import directory not configured", http.StatusServiceUnavailable)
		return
	}
	n, err := h.importer.Run(r.Context())
	if err != nil {
		h.writeError(w, "import", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int{"imported": n})
}
