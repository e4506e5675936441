// Package budget implements the daily budget allocation.
//
// All money amounts are decimal.Decimal, all calendar math works on whole
// days. The entry point is Compute, which turns the expense list and the
// budget settings into the figures shown on the dashboard.
package budget

import (
	"github.com/pocketdiary/backend/internal/types"
)

// Cycle is one billing period. Both bounds are inclusive.
type Cycle struct {
	Start types.Date `json:"start" example:"2024-03-05"`
	End   types.Date `json:"end" example:"2024-04-04"`
}

// ResolveCycle returns the billing cycle containing the reference date.
//
// The cycle starts on startDay of the current month if the reference date
// has reached it, otherwise on startDay of the previous month. It ends the
// day before the next cycle begins. startDay is clamped into 1-28 so the
// start day exists in every month.
func ResolveCycle(today types.Date, startDay int) Cycle {
	if startDay < 1 {
		startDay = 1
	}
	if startDay > 28 {
		startDay = 28
	}

	start := types.NewDate(today.Year(), today.Month(), startDay)
	if today.Day() < startDay {
		start = start.AddDate(0, -1, 0)
	}

	return Cycle{
		Start: start,
		End:   start.AddDate(0, 1, 0).AddDate(0, 0, -1),
	}
}

// TotalDays returns the number of days in the cycle, both bounds counted.
func (c Cycle) TotalDays() int {
	return c.Start.DaysUntil(c.End) + 1
}

// Contains reports whether the date falls into the cycle.
func (c Cycle) Contains(date types.Date) bool {
	return !date.Before(c.Start) && !date.After(c.End)
}
