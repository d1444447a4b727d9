package engine

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"adpace/internal/core/domain"
)

func hasWarning(out domain.SimulationOutput, substr string) bool {
	for _, w := range out.Warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

// TestSimulateEmptyInputMatchesBaseline ensures a simulation without
// changes reproduces the baseline exactly.
func TestSimulateEmptyInputMatchesBaseline(t *testing.T) {
	c := domain.Campaign{
		ID:          7,
		Status:      domain.StatusActive,
		StartDate:   date(2024, time.October, 1),
		EndDate:     date(2024, time.October, 31),
		TotalBudget: 31000,
		DailyBudget: 31000.0 / 29.0,
		ActualSpend: 15000,
	}
	windows := []domain.PauseWindow{
		window(date(2024, time.October, 20), date(2024, time.October, 21)),
	}
	out := Simulate(c, windows, domain.SimulationInput{}, date(2024, time.October, 16))

	if !reflect.DeepEqual(out.Baseline, out.Simulated) {
		t.Fatalf("baseline %+v differs from simulated %+v", out.Baseline, out.Simulated)
	}
	if out.DailyBudgetChange != 0 || out.DailyBudgetChangePercent != 0 {
		t.Fatalf("daily budget deltas: got %v / %v%%, want 0", out.DailyBudgetChange, out.DailyBudgetChangePercent)
	}
	if out.ProjectedSpendChange != 0 || out.ProjectedSpendChangePercent != 0 {
		t.Fatalf("projected spend deltas: got %v / %v%%, want 0", out.ProjectedSpendChange, out.ProjectedSpendChangePercent)
	}
	if out.ActiveDaysChange != 0 {
		t.Fatalf("active days delta: got %d, want 0", out.ActiveDaysChange)
	}
	if len(out.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", out.Warnings)
	}
	if !strings.Contains(out.Recommendation, "sustainable") {
		t.Fatalf("recommendation: got %q", out.Recommendation)
	}
}

// TestSimulateBudgetCutReportsSavings ensures halving the budget of an
// untouched campaign halves the daily budget and reports the savings.
func TestSimulateBudgetCutReportsSavings(t *testing.T) {
	c := domain.Campaign{
		ID:          3,
		Status:      domain.StatusActive,
		StartDate:   date(2024, time.October, 8),
		EndDate:     date(2024, time.October, 21),
		TotalBudget: 20000,
		DailyBudget: 20000.0 / 14.0,
	}
	budget := 10000.0
	out := Simulate(c, nil, domain.SimulationInput{TotalBudget: &budget}, date(2024, time.October, 1))

	if out.DailyBudgetChange >= 0 {
		t.Fatalf("daily budget change: got %v, want negative", out.DailyBudgetChange)
	}
	if !approx(out.DailyBudgetChangePercent, -50) {
		t.Fatalf("daily budget change percent: got %v, want -50", out.DailyBudgetChangePercent)
	}
	if out.ProjectedSpendChange > 0 {
		t.Fatalf("projected spend change: got %v, want non-positive", out.ProjectedSpendChange)
	}
	if !strings.Contains(out.Recommendation, "lowers projected spend") {
		t.Fatalf("recommendation: got %q", out.Recommendation)
	}
}

// TestSimulateRemoveUnknownWindowIsNoop ensures removal of an ID that
// matches no stored window changes nothing.
func TestSimulateRemoveUnknownWindowIsNoop(t *testing.T) {
	c := domain.Campaign{
		ID:          4,
		Status:      domain.StatusActive,
		StartDate:   date(2024, time.October, 1),
		EndDate:     date(2024, time.October, 31),
		TotalBudget: 31000,
		DailyBudget: 31000.0 / 26.0,
		ActualSpend: 9000,
	}
	windows := []domain.PauseWindow{
		window(date(2024, time.October, 10), date(2024, time.October, 14)),
	}
	in := domain.SimulationInput{RemovePauseWindows: []uuid.UUID{uuid.New()}}
	out := Simulate(c, windows, in, date(2024, time.October, 8))

	if out.ActiveDaysChange != 0 {
		t.Fatalf("active days delta: got %d, want 0", out.ActiveDaysChange)
	}
	if !reflect.DeepEqual(out.Baseline, out.Simulated) {
		t.Fatalf("baseline %+v differs from simulated %+v", out.Baseline, out.Simulated)
	}
}

// TestSimulateRemoveWindowExtendsActiveDays ensures dropping a stored
// window returns its days to the schedule.
func TestSimulateRemoveWindowExtendsActiveDays(t *testing.T) {
	c := domain.Campaign{
		ID:          4,
		Status:      domain.StatusActive,
		StartDate:   date(2024, time.October, 1),
		EndDate:     date(2024, time.October, 31),
		TotalBudget: 31000,
		DailyBudget: 31000.0 / 26.0,
		ActualSpend: 9000,
	}
	w := window(date(2024, time.October, 10), date(2024, time.October, 14))
	in := domain.SimulationInput{RemovePauseWindows: []uuid.UUID{w.ID}}
	out := Simulate(c, []domain.PauseWindow{w}, in, date(2024, time.October, 8))

	if out.Baseline.ActiveDays != 26 {
		t.Fatalf("baseline active days: got %d, want 26", out.Baseline.ActiveDays)
	}
	if out.Simulated.ActiveDays != 31 {
		t.Fatalf("simulated active days: got %d, want 31", out.Simulated.ActiveDays)
	}
	if out.ActiveDaysChange != 5 {
		t.Fatalf("active days delta: got %d, want 5", out.ActiveDaysChange)
	}
}

// TestSimulateAddWindowLowRunwayWarning ensures pausing most of the
// remaining schedule trips the runway warning.
func TestSimulateAddWindowLowRunwayWarning(t *testing.T) {
	c := domain.Campaign{
		ID:          5,
		Status:      domain.StatusActive,
		StartDate:   date(2024, time.October, 1),
		EndDate:     date(2024, time.October, 31),
		TotalBudget: 31000,
		DailyBudget: 1000,
		ActualSpend: 24000,
	}
	in := domain.SimulationInput{AddPauseWindows: []domain.SimulatedPause{
		{StartDate: date(2024, time.October, 26), EndDate: date(2024, time.October, 31)},
	}}
	out := Simulate(c, nil, in, date(2024, time.October, 25))

	if !hasWarning(out, "active days remain") {
		t.Fatalf("expected a low runway warning, got %v", out.Warnings)
	}
	if out.ActiveDaysChange != -6 {
		t.Fatalf("active days delta: got %d, want -6", out.ActiveDaysChange)
	}
}

// TestSimulateDailyOverrideIncreaseWarning ensures a hypothetical daily
// budget far above the configured one is flagged.
func TestSimulateDailyOverrideIncreaseWarning(t *testing.T) {
	c := domain.Campaign{
		ID:          6,
		Status:      domain.StatusActive,
		StartDate:   date(2024, time.October, 1),
		EndDate:     date(2024, time.October, 31),
		TotalBudget: 3100,
		DailyBudget: 100,
		ActualSpend: 500,
	}
	daily := 200.0
	out := Simulate(c, nil, domain.SimulationInput{DailyBudget: &daily}, date(2024, time.October, 10))

	if !hasWarning(out, "more than 1.5x") {
		t.Fatalf("expected a daily budget increase warning, got %v", out.Warnings)
	}
}

// TestSimulateOverrunRecommendation ensures an unchanged but overrunning
// campaign is told the rate that would land on budget.
func TestSimulateOverrunRecommendation(t *testing.T) {
	c := domain.Campaign{
		ID:          8,
		Status:      domain.StatusActive,
		StartDate:   date(2024, time.October, 1),
		EndDate:     date(2024, time.October, 11),
		TotalBudget: 10000,
		DailyBudget: 10000.0 / 11.0,
		ActualSpend: 6000,
	}
	out := Simulate(c, nil, domain.SimulationInput{}, date(2024, time.October, 6))

	if !hasWarning(out, "overruns the total budget") {
		t.Fatalf("expected an overrun warning, got %v", out.Warnings)
	}
	if !strings.Contains(out.Recommendation, "reduce the daily budget") {
		t.Fatalf("recommendation: got %q", out.Recommendation)
	}
}

// TestSimulateBudgetRaiseAffordability ensures a raise that stays within
// the new total is reported as affordable.
func TestSimulateBudgetRaiseAffordability(t *testing.T) {
	c := domain.Campaign{
		ID:          9,
		Status:      domain.StatusActive,
		StartDate:   date(2024, time.October, 1),
		EndDate:     date(2024, time.October, 11),
		TotalBudget: 10000,
		DailyBudget: 10000.0 / 11.0,
		ActualSpend: 6000,
	}
	budget := 20000.0
	out := Simulate(c, nil, domain.SimulationInput{TotalBudget: &budget}, date(2024, time.October, 6))

	if out.DailyBudgetChange <= 0 {
		t.Fatalf("daily budget change: got %v, want positive", out.DailyBudgetChange)
	}
	if !strings.Contains(out.Recommendation, "still lands within") {
		t.Fatalf("recommendation: got %q", out.Recommendation)
	}
}

// TestSimulateZeroBaselineGuards ensures change percentages stay zero
// when the baseline daily budget or projection is zero.
func TestSimulateZeroBaselineGuards(t *testing.T) {
	start, end := date(2024, time.October, 1), date(2024, time.October, 31)
	c := domain.Campaign{
		ID:          10,
		Status:      domain.StatusPaused,
		StartDate:   start,
		EndDate:     end,
		TotalBudget: 31000,
	}
	w := window(start, end)
	in := domain.SimulationInput{RemovePauseWindows: []uuid.UUID{w.ID}}
	out := Simulate(c, []domain.PauseWindow{w}, in, date(2024, time.October, 10))

	if out.Baseline.DailyBudget != 0 {
		t.Fatalf("baseline daily budget: got %v, want 0", out.Baseline.DailyBudget)
	}
	if out.DailyBudgetChange <= 0 {
		t.Fatalf("daily budget change: got %v, want positive", out.DailyBudgetChange)
	}
	if out.DailyBudgetChangePercent != 0 {
		t.Fatalf("daily budget change percent against zero baseline: got %v, want 0", out.DailyBudgetChangePercent)
	}
	if out.ProjectedSpendChangePercent != 0 {
		t.Fatalf("projected spend change percent against zero baseline: got %v, want 0", out.ProjectedSpendChangePercent)
	}
}

// TestSimulateDoesNotMutateInputs ensures the stored window slice is
// left untouched by the simulation.
func TestSimulateDoesNotMutateInputs(t *testing.T) {
	c := domain.Campaign{
		ID:          11,
		Status:      domain.StatusActive,
		StartDate:   date(2024, time.October, 1),
		EndDate:     date(2024, time.October, 31),
		TotalBudget: 31000,
		DailyBudget: 31000.0 / 26.0,
	}
	w := window(date(2024, time.October, 10), date(2024, time.October, 14))
	windows := []domain.PauseWindow{w}
	in := domain.SimulationInput{
		RemovePauseWindows: []uuid.UUID{w.ID},
		AddPauseWindows: []domain.SimulatedPause{
			{StartDate: date(2024, time.October, 1), EndDate: date(2024, time.October, 2)},
		},
	}
	Simulate(c, windows, in, date(2024, time.October, 8))

	if len(windows) != 1 || windows[0].ID != w.ID || !windows[0].StartDate.Equal(w.StartDate) {
		t.Fatalf("stored windows were modified: %+v", windows)
	}
}
