package domain

import (
	"time"

	"github.com/google/uuid"
)

// SimulationInput describes a hypothetical change to a campaign. Nil
// fields keep the campaign's current value. Unknown window IDs in
// RemovePauseWindows are ignored.
type SimulationInput struct {
	TotalBudget        *float64         `json:"total_budget,omitempty"`
	DailyBudget        *float64         `json:"daily_budget,omitempty"`
	RemovePauseWindows []uuid.UUID      `json:"remove_pause_windows,omitempty"`
	AddPauseWindows    []SimulatedPause `json:"add_pause_windows,omitempty"`
}

// SimulatedPause is a pause window that exists only inside a simulation.
type SimulatedPause struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// SimulationSnapshot captures the derived numbers for one configuration,
// either the campaign as it stands or the hypothetical variant.
type SimulationSnapshot struct {
	DailyBudget    float64 `json:"daily_budget"`
	ProjectedSpend float64 `json:"projected_spend"`
	BudgetVariance float64 `json:"budget_variance"`
	ActiveDays     int     `json:"active_days"`
}

// SimulationOutput compares the hypothetical configuration against the
// campaign's current one. Change percentages are 0 when the baseline
// value is 0.
type SimulationOutput struct {
	Baseline                    SimulationSnapshot `json:"baseline"`
	Simulated                   SimulationSnapshot `json:"simulated"`
	DailyBudgetChange           float64            `json:"daily_budget_change"`
	DailyBudgetChangePercent    float64            `json:"daily_budget_change_percent"`
	ProjectedSpendChange        float64            `json:"projected_spend_change"`
	ProjectedSpendChangePercent float64            `json:"projected_spend_change_percent"`
	ActiveDaysChange            int                `json:"active_days_change"`
	Recommendation              string             `json:"recommendation"`
	Warnings                    []string           `json:"warnings,omitempty"`
}
