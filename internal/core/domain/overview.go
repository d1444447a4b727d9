package domain

// Overview aggregates budgets and spend across a set of campaigns,
// with per-channel and per-customer rollups.
type Overview struct {
	TotalBudget        float64          `json:"total_budget"`
	TotalSpend         float64          `json:"total_spend"`
	UtilizationPercent float64          `json:"utilization_percent"`
	Campaigns          int              `json:"campaigns"`
	ActiveCampaigns    int              `json:"active_campaigns"`
	Channels           []ChannelRollup  `json:"channels"`
	Customers          []CustomerRollup `json:"customers"`
}

// ChannelRollup sums budget and spend for one delivery channel.
type ChannelRollup struct {
	Channel            string  `json:"channel"`
	Campaigns          int     `json:"campaigns"`
	TotalBudget        float64 `json:"total_budget"`
	TotalSpend         float64 `json:"total_spend"`
	UtilizationPercent float64 `json:"utilization_percent"`
}

// CustomerRollup sums budget and spend for one customer.
type CustomerRollup struct {
	Customer           string  `json:"customer"`
	Campaigns          int     `json:"campaigns"`
	TotalBudget        float64 `json:"total_budget"`
	TotalSpend         float64 `json:"total_spend"`
	UtilizationPercent float64 `json:"utilization_percent"`
}
