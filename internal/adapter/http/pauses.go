package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adpace/internal/core/port"
)

// handleAddPauseWindow attaches a pause window to the campaign and
// returns it. The daily budget is recomputed by the usecase.
func (h *Handler) handleAddPauseWindow(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var body struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
		Reason    string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	start, err := parseDay(body.StartDate)
	if err != nil {
		http.Error(w, "invalid start_date", http.StatusBadRequest)
		return
	}
	end, err := parseDay(body.EndDate)
	if err != nil {
		http.Error(w, "invalid end_date", http.StatusBadRequest)
		return
	}

	win, err := h.svc.AddPauseWindow(r.Context(), id, port.PauseWindowReq{
		StartDate: start,
		EndDate:   end,
		Reason:    body.Reason,
	})
	if err != nil {
		h.writeError(w, "add pause window", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, win)
}

// handleRemovePauseWindow detaches a pause window. Unknown windows
// result in HTTP 404.
func (h *Handler) handleRemovePauseWindow(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	windowID, err := uuid.Parse(chi.URLParam(r, "windowID"))
	if err != nil {
		http.Error(w, "invalid window id", http.StatusBadRequest)
		return
	}
	if err := h.svc.RemovePauseWindow(r.Context(), id, windowID); err != nil {
		h.writeError(w, "remove pause window", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
