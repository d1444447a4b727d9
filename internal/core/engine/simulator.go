package engine

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"adpace/internal/core/domain"
)

// Simulation guardrails.
const (
	// DailyBudgetIncreaseWarningRatio flags hypothetical daily budgets
	// above this multiple of the configured one.
	DailyBudgetIncreaseWarningRatio = 1.5
	// LowRunwayDays flags schedules with fewer active days left than this.
	LowRunwayDays = 7
)

// Simulate evaluates a hypothetical campaign configuration against the
// current one and reports the deltas, warnings and a recommendation.
// The campaign and its stored windows are never modified; pause windows
// added by the input exist only inside the simulation, under fresh IDs.
//
// Both snapshots recompute the daily budget from total, dates and
// windows rather than trusting the stored column, so an empty input
// always reproduces the baseline exactly.
func Simulate(c domain.Campaign, windows []domain.PauseWindow, in domain.SimulationInput, today time.Time) domain.SimulationOutput {
	td := Day(today)

	baseDays := ActiveDays(c.StartDate, c.EndDate, windows)
	baseDaily := DailyBudget(c.TotalBudget, c.StartDate, c.EndDate, windows)
	base := c
	base.DailyBudget = baseDaily
	baseForecast := Forecast(base, windows, td)

	hypWindows := make([]domain.PauseWindow, 0, len(windows)+len(in.AddPauseWindows))
	for _, w := range windows {
		if slices.Contains(in.RemovePauseWindows, w.ID) {
			continue
		}
		hypWindows = append(hypWindows, w)
	}
	for _, p := range in.AddPauseWindows {
		hypWindows = append(hypWindows, domain.PauseWindow{
			ID:         uuid.New(),
			CampaignID: c.ID,
			StartDate:  Day(p.StartDate),
			EndDate:    Day(p.EndDate),
		})
	}

	hyp := c
	if in.TotalBudget != nil {
		hyp.TotalBudget = *in.TotalBudget
	}
	hyp.DailyBudget = DailyBudget(hyp.TotalBudget, c.StartDate, c.EndDate, hypWindows)
	if in.DailyBudget != nil {
		hyp.DailyBudget = *in.DailyBudget
	}
	hypDays := ActiveDays(c.StartDate, c.EndDate, hypWindows)
	hypForecast := Forecast(hyp, hypWindows, td)

	out := domain.SimulationOutput{
		Baseline: domain.SimulationSnapshot{
			DailyBudget:    baseDaily,
			ProjectedSpend: baseForecast.ProjectedSpend,
			BudgetVariance: baseForecast.BudgetVariance,
			ActiveDays:     baseDays,
		},
		Simulated: domain.SimulationSnapshot{
			DailyBudget:    hyp.DailyBudget,
			ProjectedSpend: hypForecast.ProjectedSpend,
			BudgetVariance: hypForecast.BudgetVariance,
			ActiveDays:     hypDays,
		},
		ActiveDaysChange: hypDays - baseDays,
	}
	out.DailyBudgetChange = hyp.DailyBudget - baseDaily
	if baseDaily != 0 {
		out.DailyBudgetChangePercent = out.DailyBudgetChange / baseDaily * 100
	}
	out.ProjectedSpendChange = hypForecast.ProjectedSpend - baseForecast.ProjectedSpend
	if baseForecast.ProjectedSpend != 0 {
		out.ProjectedSpendChangePercent = out.ProjectedSpendChange / baseForecast.ProjectedSpend * 100
	}

	if hypForecast.IsOverrun {
		out.Warnings = append(out.Warnings, fmt.Sprintf("simulated plan overruns the total budget by %.2f", hypForecast.BudgetVariance))
	}
	if hyp.DailyBudget > c.DailyBudget*DailyBudgetIncreaseWarningRatio {
		out.Warnings = append(out.Warnings, fmt.Sprintf("simulated daily budget %.2f is more than %.1fx the configured %.2f", hyp.DailyBudget, DailyBudgetIncreaseWarningRatio, c.DailyBudget))
	}
	if left := RemainingActiveDays(td, c.EndDate, hypWindows); left < LowRunwayDays {
		out.Warnings = append(out.Warnings, fmt.Sprintf("only %d active days remain in the simulated schedule", left))
	}

	switch {
	case out.DailyBudgetChange > 0 && !hypForecast.IsOverrun:
		out.Recommendation = fmt.Sprintf("the raised daily budget of %.2f still lands within the total budget by %s", hyp.DailyBudget, Day(c.EndDate).Format("2006-01-02"))
	case out.DailyBudgetChange < 0:
		out.Recommendation = fmt.Sprintf("the reduced plan lowers projected spend by %.2f", baseForecast.ProjectedSpend-hypForecast.ProjectedSpend)
	case hypForecast.IsOverrun:
		out.Recommendation = fmt.Sprintf("reduce the daily budget to %.2f to finish within the total budget", hypForecast.RecommendedDailyBudget)
	default:
		out.Recommendation = "the simulated plan is sustainable within the total budget"
	}
	return out
}
