package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"adpace/internal/core/domain"
)

// handleForecast returns the spend projection for one campaign as of today.
func (h *Handler) handleForecast(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	res, err := h.svc.Forecast(r.Context(), id)
	if err != nil {
		h.writeError(w, "forecast", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleCheckAlerts evaluates the alert rules for one campaign without
// persisting anything.
func (h *Handler) handleCheckAlerts(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	check, err := h.svc.CheckAlerts(r.Context(), id)
	if err != nil {
		h.writeError(w, "check alerts", err)
		return
	}
	h.writeJSON(w, http.StatusOK, check)
}

type simulateBody struct {
	TotalBudget        *float64 `json:"total_budget"`
	DailyBudget        *float64 `json:"daily_budget"`
	RemovePauseWindows []string `json:"remove_pause_windows"`
	AddPauseWindows    []struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	} `json:"add_pause_windows"`
}

// handleSimulate evaluates a hypothetical configuration for the
// campaign. Nothing is persisted.
func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var body simulateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	in := domain.SimulationInput{
		TotalBudget: body.TotalBudget,
		DailyBudget: body.DailyBudget,
	}
	for _, raw := range body.RemovePauseWindows {
		wid, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid window id in remove_pause_windows", http.StatusBadRequest)
			return
		}
		in.RemovePauseWindows = append(in.RemovePauseWindows, wid)
	}
	for _, p := range body.AddPauseWindows {
		start, err := parseDay(p.StartDate)
		if err != nil {
			http.Error(w, "invalid start_date in add_pause_windows", http.StatusBadRequest)
			return
		}
		end, err := parseDay(p.EndDate)
		if err != nil {
			http.Error(w, "invalid end_date in add_pause_windows", http.StatusBadRequest)
			return
		}
		in.AddPauseWindows = append(in.AddPauseWindows, domain.SimulatedPause{StartDate: start, EndDate: end})
	}

	out, err := h.svc.Simulate(r.Context(), id, in)
	if err != nil {
		h.writeError(w, "simulate", err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleTracking returns the spend tracking board: every matching
// campaign with its forecast and alert state as of the same day.
func (h *Handler) handleTracking(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tracked, err := h.svc.TrackCampaigns(r.Context(), domain.CampaignFilter{
		Customer: q.Get("customer"),
		Channel:  q.Get("channel"),
		Status:   domain.Status(q.Get("status")),
	})
	if err != nil {
		h.writeError(w, "tracking", err)
		return
	}
	h.writeJSON(w, http.StatusOK, tracked)
}

// handleOverview returns portfolio totals with channel and customer rollups.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ov, err := h.svc.Overview(r.Context(), domain.CampaignFilter{
		Customer: q.Get("customer"),
		Channel:  q.Get("channel"),
		Status:   domain.Status(q.Get("status")),
	})
	if err != nil {
		h.writeError(w, "overview", err)
		return
	}
	h.writeJSON(w, http.StatusOK, ov)
}
