// Package ifta derives the IFTA jurisdiction allocation table and fleet
// insights from fuel entries. Every function is pure: callers pass in the
// entries, trucks, window and clock, and get freshly built results back.
package ifta

import (
	"errors"
	"time"

	"github.com/micronlogivdev/iftaway/internal/model"
)

// MinEntries is the fewest in-window entries a report can be built from
const MinEntries = 2

// ErrInsufficientData means the window holds fewer than MinEntries entries.
// It is informational: no report is produced, nothing failed.
var ErrInsufficientData = errors.New("not enough data to generate a report, at least two fuel entries are required")

// Window is an inclusive reporting range
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewWindow returns [start, end] with end pushed to the last instant of its day
func NewWindow(start, end time.Time) Window {
	return Window{Start: start, End: endOfDay(end)}
}

// QuarterWindow returns the window covering calendar quarter 1..4 of year
func QuarterWindow(year, quarter int, loc *time.Location) Window {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, loc)
	last := start.AddDate(0, 3, -1)
	return NewWindow(start, last)
}

// QuarterOf returns the calendar quarter (1..4) containing t
func QuarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// Contains reports whether t lies inside the window, bounds included
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// FilterEntries keeps entries that are not ignored and fall inside w.
// The input slice is never modified.
func FilterEntries(entries []model.FuelEntry, w Window) []model.FuelEntry {
	filtered := make([]model.FuelEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsIgnored || !w.Contains(e.DateTime) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
