package engine

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"adpace/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func window(start, end time.Time) domain.PauseWindow {
	return domain.PauseWindow{ID: uuid.New(), StartDate: start, EndDate: end}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestActiveDaysCountsInclusiveRange ensures both range ends count as days.
func TestActiveDaysCountsInclusiveRange(t *testing.T) {
	got := ActiveDays(date(2024, time.October, 1), date(2024, time.October, 7), nil)
	if got != 7 {
		t.Fatalf("ActiveDays over a week: got %d, want 7", got)
	}
	got = ActiveDays(date(2024, time.October, 1), date(2024, time.October, 1), nil)
	if got != 1 {
		t.Fatalf("ActiveDays over a single day: got %d, want 1", got)
	}
}

// TestActiveDaysInvertedRange ensures end before start counts zero days.
func TestActiveDaysInvertedRange(t *testing.T) {
	got := ActiveDays(date(2024, time.October, 7), date(2024, time.October, 1), nil)
	if got != 0 {
		t.Fatalf("inverted range: got %d, want 0", got)
	}
	if p := PausedDays(date(2024, time.October, 7), date(2024, time.October, 1), nil); p != 0 {
		t.Fatalf("inverted range paused days: got %d, want 0", p)
	}
}

// TestActiveDaysSubtractsOverlapOnly ensures a window reaching outside the
// range only removes the days it covers inside it.
func TestActiveDaysSubtractsOverlapOnly(t *testing.T) {
	windows := []domain.PauseWindow{
		window(date(2024, time.September, 28), date(2024, time.October, 3)),
	}
	got := ActiveDays(date(2024, time.October, 1), date(2024, time.October, 10), windows)
	if got != 7 {
		t.Fatalf("partially overlapping window: got %d, want 7", got)
	}
}

// TestActiveDaysCountsOverlappingWindowsOnce ensures a day covered by two
// windows is subtracted a single time.
func TestActiveDaysCountsOverlappingWindowsOnce(t *testing.T) {
	windows := []domain.PauseWindow{
		window(date(2024, time.October, 2), date(2024, time.October, 5)),
		window(date(2024, time.October, 4), date(2024, time.October, 7)),
	}
	got := ActiveDays(date(2024, time.October, 1), date(2024, time.October, 10), windows)
	if got != 4 {
		t.Fatalf("overlapping windows: got %d active days, want 4", got)
	}
	if p := PausedDays(date(2024, time.October, 1), date(2024, time.October, 10), windows); p != 6 {
		t.Fatalf("overlapping windows: got %d paused days, want 6", p)
	}
}

// TestActiveDaysIgnoresDisjointWindow ensures windows outside the range
// change nothing.
func TestActiveDaysIgnoresDisjointWindow(t *testing.T) {
	windows := []domain.PauseWindow{
		window(date(2024, time.November, 1), date(2024, time.November, 30)),
	}
	got := ActiveDays(date(2024, time.October, 1), date(2024, time.October, 10), windows)
	if got != 10 {
		t.Fatalf("disjoint window: got %d, want 10", got)
	}
}

// TestActiveDaysFullRangePause ensures a window covering the whole range
// leaves zero active days.
func TestActiveDaysFullRangePause(t *testing.T) {
	start, end := date(2024, time.October, 1), date(2024, time.October, 31)
	windows := []domain.PauseWindow{window(start, end)}
	if got := ActiveDays(start, end, windows); got != 0 {
		t.Fatalf("fully paused range: got %d, want 0", got)
	}
	if p := PausedDays(start, end, windows); p != 31 {
		t.Fatalf("fully paused range: got %d paused days, want 31", p)
	}
}

// TestIsPausedBoundaryDays ensures window bounds are inclusive on both ends.
func TestIsPausedBoundaryDays(t *testing.T) {
	windows := []domain.PauseWindow{
		window(date(2024, time.October, 5), date(2024, time.October, 7)),
	}
	cases := []struct {
		day  time.Time
		want bool
	}{
		{date(2024, time.October, 4), false},
		{date(2024, time.October, 5), true},
		{date(2024, time.October, 6), true},
		{date(2024, time.October, 7), true},
		{date(2024, time.October, 8), false},
	}
	for _, c := range cases {
		if got := IsPaused(c.day, windows); got != c.want {
			t.Fatalf("IsPaused(%s): got %v, want %v", c.day.Format("2006-01-02"), got, c.want)
		}
	}
}

// TestDayGranularity ensures times of day and window timestamps are
// irrelevant once truncated to the calendar day.
func TestDayGranularity(t *testing.T) {
	noon := time.Date(2024, time.October, 5, 12, 30, 15, 0, time.UTC)
	if !Day(noon).Equal(date(2024, time.October, 5)) {
		t.Fatalf("Day(%v) = %v, want midnight", noon, Day(noon))
	}
	windows := []domain.PauseWindow{window(
		time.Date(2024, time.October, 5, 10, 0, 0, 0, time.UTC),
		time.Date(2024, time.October, 5, 10, 0, 0, 0, time.UTC),
	)}
	if !IsPaused(time.Date(2024, time.October, 5, 23, 59, 0, 0, time.UTC), windows) {
		t.Fatalf("late evening of a paused day should be paused")
	}
	if IsPaused(date(2024, time.October, 6), windows) {
		t.Fatalf("next day should not be paused")
	}
}
