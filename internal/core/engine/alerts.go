package engine

import (
	"fmt"
	"time"

	"adpace/internal/core/domain"
)

// Alert thresholds are fixed contract values shared with the dashboard.
const (
	UtilizationWarningThreshold  = 90.0
	UtilizationCriticalThreshold = 95.0
	OverrunTolerancePercent      = 5.0
)

// CheckAlerts evaluates the utilization and overrun rules for a
// campaign. Utilization at or above the critical threshold produces a
// critical alert only; the warning rule does not fire alongside it.
// The overrun rule fires independently once the projected variance
// clears the tolerance.
func CheckAlerts(c domain.Campaign, windows []domain.PauseWindow, today time.Time) domain.AlertCheck {
	util := 0.0
	if c.TotalBudget > 0 {
		util = c.ActualSpend / c.TotalBudget * 100
	}
	fc := Forecast(c, windows, today)

	check := domain.AlertCheck{
		UtilizationPercent:    util,
		BudgetVariancePercent: fc.BudgetVariancePercent,
	}
	switch {
	case util >= UtilizationCriticalThreshold:
		check.Critical = true
		check.Messages = append(check.Messages, domain.AlertMessage{
			Type:         domain.AlertUtilizationCritical,
			Threshold:    UtilizationCriticalThreshold,
			CurrentValue: util,
			Text:         fmt.Sprintf("spend has reached %.1f%% of the total budget, critical threshold is %.0f%%", util, UtilizationCriticalThreshold),
		})
	case util >= UtilizationWarningThreshold:
		check.Warning = true
		check.Messages = append(check.Messages, domain.AlertMessage{
			Type:         domain.AlertUtilizationWarning,
			Threshold:    UtilizationWarningThreshold,
			CurrentValue: util,
			Text:         fmt.Sprintf("spend has reached %.1f%% of the total budget, warning threshold is %.0f%%", util, UtilizationWarningThreshold),
		})
	}
	if fc.IsOverrun && fc.BudgetVariancePercent > OverrunTolerancePercent {
		check.ForecastOverrun = true
		check.Messages = append(check.Messages, domain.AlertMessage{
			Type:         domain.AlertForecastOverrun,
			Threshold:    OverrunTolerancePercent,
			CurrentValue: fc.BudgetVariancePercent,
			Text:         fmt.Sprintf("projected spend %.2f exceeds the total budget by %.1f%%", fc.ProjectedSpend, fc.BudgetVariancePercent),
		})
	}
	return check
}
