package domain

import "time"

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusActive  Status = "active"
	StatusPaused  Status = "paused"
	StatusStopped Status = "stopped"
)

// Channel labels used across imports and rollups. Campaigns imported from
// spreadsheets get their channel inferred from the campaign name.
const (
	ChannelLinkedIn = "LinkedIn"
	ChannelGoogle   = "Google"
	ChannelMeta     = "Meta"
	ChannelOther    = "Other"
)

// Campaign is a paid media campaign with a lifetime budget spread across
// its flight dates. Monetary amounts are in currency units rounded to cents.
// StartDate and EndDate are inclusive calendar days at midnight UTC.
type Campaign struct {
	ID          int64     `json:"id"`
	Customer    string    `json:"customer"`
	Channel     string    `json:"channel"`
	GroupPath   string    `json:"group_path,omitempty"`
	Name        string    `json:"name"`
	Status      Status    `json:"status"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalBudget float64   `json:"total_budget"`
	// DailyBudget is the even split of TotalBudget over the campaign's
	// active days. It is recomputed whenever the budget, the flight dates
	// or the pause windows change.
	DailyBudget float64   `json:"daily_budget"`
	ActualSpend float64   `json:"actual_spend"`
	SourceFile  string    `json:"source_file,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CampaignFilter narrows campaign listings. Zero values match everything.
type CampaignFilter struct {
	Customer string
	Channel  string
	Status   Status
}
