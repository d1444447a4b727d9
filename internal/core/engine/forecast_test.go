package engine

import (
	"reflect"
	"testing"
	"time"

	"adpace/internal/core/domain"
)

func flight(total, spend float64) domain.Campaign {
	return domain.Campaign{
		ID:          1,
		Name:        "q4 push",
		Status:      domain.StatusActive,
		StartDate:   date(2024, time.October, 1),
		EndDate:     date(2024, time.October, 31),
		TotalBudget: total,
		DailyBudget: total / 31,
		ActualSpend: spend,
	}
}

// TestForecastExtrapolatesRunRate ensures the projection is spend so far
// plus the observed daily average over the remaining days.
func TestForecastExtrapolatesRunRate(t *testing.T) {
	c := flight(31000, 10000)
	res := Forecast(c, nil, date(2024, time.October, 10))

	if res.ElapsedActiveDays != 10 {
		t.Fatalf("elapsed: got %d, want 10", res.ElapsedActiveDays)
	}
	if res.RemainingActiveDays != 22 {
		t.Fatalf("remaining: got %d, want 22", res.RemainingActiveDays)
	}
	if !approx(res.AverageDailySpend, 1000) {
		t.Fatalf("average daily spend: got %v, want 1000", res.AverageDailySpend)
	}
	if !approx(res.ProjectedSpend, 32000) {
		t.Fatalf("projected spend: got %v, want 32000", res.ProjectedSpend)
	}
	if !approx(res.BudgetVariance, 1000) {
		t.Fatalf("variance: got %v, want 1000", res.BudgetVariance)
	}
	if !res.IsOverrun {
		t.Fatalf("expected overrun for projection above total")
	}
}

// TestForecastFallsBackToDailyBudget ensures the planned daily budget
// stands in for the run rate before the first elapsed day.
func TestForecastFallsBackToDailyBudget(t *testing.T) {
	c := flight(31000, 0)
	c.DailyBudget = 100
	res := Forecast(c, nil, date(2024, time.September, 25))

	if res.ElapsedActiveDays != 0 {
		t.Fatalf("elapsed before start: got %d, want 0", res.ElapsedActiveDays)
	}
	if !approx(res.AverageDailySpend, 100) {
		t.Fatalf("fallback average: got %v, want 100", res.AverageDailySpend)
	}
	// 6 days of September plus all of October.
	if res.RemainingActiveDays != 37 {
		t.Fatalf("remaining: got %d, want 37", res.RemainingActiveDays)
	}
	if !approx(res.ProjectedSpend, 3700) {
		t.Fatalf("projected spend: got %v, want 3700", res.ProjectedSpend)
	}
}

// TestForecastZeroTotalBudget ensures the variance percentage guards the
// division instead of producing an infinity.
func TestForecastZeroTotalBudget(t *testing.T) {
	c := flight(0, 50)
	res := Forecast(c, nil, date(2024, time.October, 10))
	if res.BudgetVariancePercent != 0 {
		t.Fatalf("variance percent with zero budget: got %v, want 0", res.BudgetVariancePercent)
	}
	if !res.IsOverrun {
		t.Fatalf("any projected spend above a zero budget is an overrun")
	}
}

// TestForecastDepletionDate ensures the depletion day is found by walking
// active days forward from today.
func TestForecastDepletionDate(t *testing.T) {
	c := flight(1000, 900)
	res := Forecast(c, nil, date(2024, time.October, 10))

	if res.DaysUntilDepletion == nil || *res.DaysUntilDepletion != 2 {
		t.Fatalf("days until depletion: got %v, want 2", res.DaysUntilDepletion)
	}
	want := date(2024, time.October, 11)
	if res.DepletionDate == nil || !res.DepletionDate.Equal(want) {
		t.Fatalf("depletion date: got %v, want %s", res.DepletionDate, want.Format("2006-01-02"))
	}
}

// TestForecastDepletionSkipsPausedDays ensures paused days neither count
// as elapsed nor consume the remaining budget during the walk.
func TestForecastDepletionSkipsPausedDays(t *testing.T) {
	c := flight(1000, 900)
	windows := []domain.PauseWindow{
		window(date(2024, time.October, 10), date(2024, time.October, 12)),
	}
	res := Forecast(c, windows, date(2024, time.October, 10))

	// 9 elapsed active days leave a rate of 100 per day, so the single
	// remaining unit of 100 is gone on the first active day, October 13.
	if res.DaysUntilDepletion == nil || *res.DaysUntilDepletion != 1 {
		t.Fatalf("days until depletion: got %v, want 1", res.DaysUntilDepletion)
	}
	want := date(2024, time.October, 13)
	if res.DepletionDate == nil || !res.DepletionDate.Equal(want) {
		t.Fatalf("depletion date: got %v, want %s", res.DepletionDate, want.Format("2006-01-02"))
	}
}

// TestForecastDepletionAtOrPastEndNotReported ensures a depletion landing
// on the end date or later is no early-depletion finding.
func TestForecastDepletionAtOrPastEndNotReported(t *testing.T) {
	c := flight(1000, 850)
	c.EndDate = date(2024, time.October, 10)
	res := Forecast(c, nil, date(2024, time.October, 9))

	// ceil(150 / (850/9)) = 2 active days, which is October 10, the end date.
	if res.DaysUntilDepletion == nil || *res.DaysUntilDepletion != 2 {
		t.Fatalf("days until depletion: got %v, want 2", res.DaysUntilDepletion)
	}
	if res.DepletionDate != nil {
		t.Fatalf("depletion on the end date should not be reported, got %v", res.DepletionDate)
	}
}

// TestForecastDepletionBoundedPastEnd ensures a budget that outlasts the
// flight still reports the day count but no date.
func TestForecastDepletionBoundedPastEnd(t *testing.T) {
	c := flight(100000, 1000)
	res := Forecast(c, nil, date(2024, time.October, 10))

	if res.DaysUntilDepletion == nil || *res.DaysUntilDepletion != 990 {
		t.Fatalf("days until depletion: got %v, want 990", res.DaysUntilDepletion)
	}
	if res.DepletionDate != nil {
		t.Fatalf("depletion beyond the scan bound should have no date, got %v", res.DepletionDate)
	}
}

// TestForecastNoDepletionWithoutRateOrBudget ensures the estimate is
// omitted for overspent campaigns and for campaigns with no spend rate.
func TestForecastNoDepletionWithoutRateOrBudget(t *testing.T) {
	over := flight(1000, 1200)
	res := Forecast(over, nil, date(2024, time.October, 10))
	if res.DaysUntilDepletion != nil || res.DepletionDate != nil {
		t.Fatalf("overspent campaign should have no depletion estimate")
	}

	idle := flight(1000, 0)
	res = Forecast(idle, nil, date(2024, time.October, 10))
	if res.DaysUntilDepletion != nil || res.DepletionDate != nil {
		t.Fatalf("campaign without spend should have no depletion estimate")
	}
	if !approx(res.ProjectedSpend, 0) {
		t.Fatalf("idle campaign projection: got %v, want 0", res.ProjectedSpend)
	}
}

// TestForecastRecommendedDailyBudget ensures the recommendation spreads
// the unspent budget over the remaining days, and follows the sign of
// the unspent amount.
func TestForecastRecommendedDailyBudget(t *testing.T) {
	c := flight(1000, 400)
	c.EndDate = date(2024, time.October, 10)
	res := Forecast(c, nil, date(2024, time.October, 6))
	if !approx(res.RecommendedDailyBudget, 120) {
		t.Fatalf("recommended daily budget: got %v, want 120", res.RecommendedDailyBudget)
	}

	c.ActualSpend = 1200
	res = Forecast(c, nil, date(2024, time.October, 6))
	if !approx(res.RecommendedDailyBudget, -40) {
		t.Fatalf("recommended daily budget when overspent: got %v, want -40", res.RecommendedDailyBudget)
	}
}

// TestForecastEndedCampaign ensures a finished flight projects exactly
// its recorded spend.
func TestForecastEndedCampaign(t *testing.T) {
	c := flight(1000, 900)
	res := Forecast(c, nil, date(2024, time.November, 5))

	if res.RemainingActiveDays != 0 {
		t.Fatalf("remaining after end: got %d, want 0", res.RemainingActiveDays)
	}
	if !approx(res.ProjectedSpend, 900) {
		t.Fatalf("projected spend after end: got %v, want 900", res.ProjectedSpend)
	}
	if res.RecommendedDailyBudget != 0 {
		t.Fatalf("recommended daily budget after end: got %v, want 0", res.RecommendedDailyBudget)
	}
	if res.DepletionDate != nil {
		t.Fatalf("no depletion date past the flight, got %v", res.DepletionDate)
	}
}

// TestForecastDeterministic ensures equal inputs produce equal results.
func TestForecastDeterministic(t *testing.T) {
	c := flight(31000, 12345.67)
	windows := []domain.PauseWindow{
		window(date(2024, time.October, 12), date(2024, time.October, 14)),
	}
	today := date(2024, time.October, 20)

	a := Forecast(c, windows, today)
	b := Forecast(c, windows, today)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("forecast not deterministic:\n  first  %+v\n  second %+v", a, b)
	}
}
