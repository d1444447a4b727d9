package domain

import "time"

// CampaignImport is one normalized row from a budget spreadsheet export.
// Rows are matched to existing campaigns by (customer, channel, name).
type CampaignImport struct {
	Customer    string
	Channel     string
	GroupPath   string
	Name        string
	Status      Status
	StartDate   time.Time
	EndDate     time.Time
	TotalBudget float64
	ActualSpend float64
	SourceFile  string
}
