package engine

import (
	"time"

	"adpace/internal/core/domain"
)

// DailyBudget spreads total evenly over the active days between start
// and end. It returns 0 when no active days remain, such as a pause
// window covering the whole flight.
func DailyBudget(total float64, start, end time.Time, windows []domain.PauseWindow) float64 {
	days := ActiveDays(start, end, windows)
	if days <= 0 {
		return 0
	}
	return total / float64(days)
}

// AdjustedDailyBudget spreads the budget still unspent over the active
// days from today through end. It returns 0 once the budget is used up
// or no active days remain, never a negative rate.
func AdjustedDailyBudget(total, spend float64, today, end time.Time, windows []domain.PauseWindow) float64 {
	remaining := total - spend
	days := RemainingActiveDays(today, end, windows)
	if remaining <= 0 || days <= 0 {
		return 0
	}
	return remaining / float64(days)
}

// ElapsedActiveDays counts the active days from start through today,
// both inclusive. It is 0 when today precedes the start date.
func ElapsedActiveDays(start, today time.Time, windows []domain.PauseWindow) int {
	return ActiveDays(start, today, windows)
}

// RemainingActiveDays counts the active days from today through end,
// both inclusive. It is 0 when the end date has passed.
func RemainingActiveDays(today, end time.Time, windows []domain.PauseWindow) int {
	return ActiveDays(today, end, windows)
}
