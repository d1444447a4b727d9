package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertType identifies the rule that produced an alert.
type AlertType string

const (
	AlertUtilizationWarning  AlertType = "utilization_warning"
	AlertUtilizationCritical AlertType = "utilization_critical"
	AlertForecastOverrun     AlertType = "forecast_overrun"
)

// AlertCheck is the outcome of evaluating a campaign against the alert
// thresholds. At most one of Warning and Critical is set; critical
// supersedes warning.
type AlertCheck struct {
	UtilizationPercent    float64        `json:"utilization_percent"`
	BudgetVariancePercent float64        `json:"budget_variance_percent"`
	Warning               bool           `json:"warning"`
	Critical              bool           `json:"critical"`
	ForecastOverrun       bool           `json:"forecast_overrun"`
	Messages              []AlertMessage `json:"messages,omitempty"`
}

// AlertMessage is a single triggered rule with the threshold it crossed
// and the value that crossed it.
type AlertMessage struct {
	Type         AlertType `json:"type"`
	Threshold    float64   `json:"threshold"`
	CurrentValue float64   `json:"current_value"`
	Text         string    `json:"text"`
}

// Alert is a persisted alert message produced by a sweep. An unread alert
// of the same type suppresses re-inserting the same finding for a campaign.
type Alert struct {
	ID           uuid.UUID `json:"id"`
	CampaignID   int64     `json:"campaign_id"`
	Type         AlertType `json:"type"`
	Message      string    `json:"message"`
	Threshold    float64   `json:"threshold"`
	CurrentValue float64   `json:"current_value"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}

// AlertFilter narrows alert listings. A nil CampaignID matches all campaigns.
type AlertFilter struct {
	CampaignID *int64
	UnreadOnly bool
}
