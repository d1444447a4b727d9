package httpadapter

import (
	"encoding/json"
	"net/http"

	"adpace/internal/core/domain"
	"adpace/internal/core/port"
)

type campaignBody struct {
	Customer    string  `json:"customer"`
	Channel     string  `json:"channel"`
	GroupPath   string  `json:"group_path"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	TotalBudget float64 `json:"total_budget"`
}

// handleCreateCampaign stores a new campaign. Dates are calendar days in
// YYYY-MM-DD form. Parsing errors produce HTTP 400, validation failures
// map through the usecase and internal errors result in HTTP 500.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body campaignBody
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

	c, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignReq{
		Customer:    body.Customer,
		Channel:     body.Channel,
		GroupPath:   body.GroupPath,
		Name:        body.Name,
		Status:      domain.Status(body.Status),
		StartDate:   start,
		EndDate:     end,
		TotalBudget: body.TotalBudget,
	})
	if err != nil {
		h.writeError(w, "create campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

// handleListCampaigns returns campaigns, optionally narrowed by the
// `customer`, `channel` and `status` query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	campaigns, err := h.svc.ListCampaigns(r.Context(), domain.CampaignFilter{
		Customer: q.Get("customer"),
		Channel:  q.Get("channel"),
		Status:   domain.Status(q.Get("status")),
	})
	if err != nil {
		h.writeError(w, "list campaigns", err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleGetCampaign returns one campaign with its pause windows.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	detail, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}

// handleUpdateBudget replaces the campaign's total budget.
func (h *Handler) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var body struct {
		TotalBudget float64 `json:"total_budget"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.svc.UpdateBudget(r.Context(), id, body.TotalBudget)
	if err != nil {
		h.writeError(w, "update budget", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleRecordSpend adds delivered spend to the campaign.
func (h *Handler) handleRecordSpend(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.svc.RecordSpend(r.Context(), id, body.Amount)
	if err != nil {
		h.writeError(w, "record spend", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}
