// Package engine holds the pure budget pacing computations. Every
// function is deterministic: the reference day is always passed in by
// the caller and nothing here reads the clock, the database or any
// other outside state.
package engine

import (
	"time"

	"adpace/internal/core/domain"
)

// Day truncates t to its calendar day, at midnight UTC. All date
// comparisons in this package happen at day granularity.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsPaused reports whether day falls inside any of the windows.
// Window bounds are inclusive on both ends.
func IsPaused(day time.Time, windows []domain.PauseWindow) bool {
	d := Day(day)
	for _, w := range windows {
		if !d.Before(Day(w.StartDate)) && !d.After(Day(w.EndDate)) {
			return true
		}
	}
	return false
}

// ActiveDays counts the days in [start, end], inclusive on both ends,
// not covered by any pause window. Days covered by several overlapping
// windows are subtracted once. An inverted range counts zero days.
func ActiveDays(start, end time.Time, windows []domain.PauseWindow) int {
	s, e := Day(start), Day(end)
	if e.Before(s) {
		return 0
	}
	n := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if !IsPaused(d, windows) {
			n++
		}
	}
	return n
}

// PausedDays counts the days in [start, end] covered by at least one
// pause window.
func PausedDays(start, end time.Time, windows []domain.PauseWindow) int {
	s, e := Day(start), Day(end)
	if e.Before(s) {
		return 0
	}
	total := int(e.Sub(s).Hours()/24) + 1
	return total - ActiveDays(s, e, windows)
}
