package engine

import (
	"math"
	"time"

	"adpace/internal/core/domain"
)

// Depletion scanning gives up this many days past the campaign end.
const depletionScanBoundDays = 365

// Forecast extrapolates the campaign's spend to its end date. The run
// rate is actual spend averaged over elapsed active days; before any
// day has elapsed the planned daily budget stands in for the rate.
func Forecast(c domain.Campaign, windows []domain.PauseWindow, today time.Time) domain.ForecastResult {
	td := Day(today)
	elapsed := ElapsedActiveDays(c.StartDate, td, windows)
	remaining := RemainingActiveDays(td, c.EndDate, windows)

	avg := c.DailyBudget
	if elapsed > 0 {
		avg = c.ActualSpend / float64(elapsed)
	}

	projected := c.ActualSpend + avg*float64(remaining)
	variance := projected - c.TotalBudget
	variancePct := 0.0
	if c.TotalBudget > 0 {
		variancePct = variance / c.TotalBudget * 100
	}

	res := domain.ForecastResult{
		ProjectedSpend:        projected,
		AverageDailySpend:     avg,
		BudgetVariance:        variance,
		BudgetVariancePercent: variancePct,
		IsOverrun:             projected > c.TotalBudget,
		ElapsedActiveDays:     elapsed,
		RemainingActiveDays:   remaining,
	}
	if remaining > 0 {
		res.RecommendedDailyBudget = (c.TotalBudget - c.ActualSpend) / float64(remaining)
	}

	if unspent := c.TotalBudget - c.ActualSpend; unspent > 0 && avg > 0 {
		days := int(math.Ceil(unspent / avg))
		res.DaysUntilDepletion = &days
		end := Day(c.EndDate)
		if date, ok := depletionDate(td, end, windows, days); ok && date.Before(end) {
			res.DepletionDate = &date
		}
	}
	return res
}

// depletionDate walks forward from today and returns the need-th active
// day, today included. The walk stops depletionScanBoundDays past end so
// a fully paused tail cannot loop forever.
func depletionDate(today, end time.Time, windows []domain.PauseWindow, need int) (time.Time, bool) {
	if need <= 0 {
		return time.Time{}, false
	}
	limit := end.AddDate(0, 0, depletionScanBoundDays)
	seen := 0
	for d := today; !d.After(limit); d = d.AddDate(0, 0, 1) {
		if IsPaused(d, windows) {
			continue
		}
		seen++
		if seen == need {
			return d, true
		}
	}
	return time.Time{}, false
}
