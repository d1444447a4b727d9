package domain

import "time"

// ForecastResult projects a campaign's final spend by extrapolating the
// observed run rate over the remaining active days.
type ForecastResult struct {
	ProjectedSpend        float64 `json:"projected_spend"`
	AverageDailySpend     float64 `json:"average_daily_spend"`
	BudgetVariance        float64 `json:"budget_variance"`
	BudgetVariancePercent float64 `json:"budget_variance_percent"`
	IsOverrun             bool    `json:"is_overrun"`
	// DaysUntilDepletion is set when the campaign still has budget left and
	// a positive run rate. DepletionDate is set only when that day lands
	// before the campaign's end date.
	DaysUntilDepletion     *int       `json:"days_until_depletion,omitempty"`
	DepletionDate          *time.Time `json:"depletion_date,omitempty"`
	ElapsedActiveDays      int        `json:"elapsed_active_days"`
	RemainingActiveDays    int        `json:"remaining_active_days"`
	RecommendedDailyBudget float64    `json:"recommended_daily_budget"`
}
