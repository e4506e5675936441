package budget

import (
	"math"
	"time"

	"github.com/pocketdiary/backend/internal/types"
)

// DaysFromMonths converts an amortization duration given in months into
// whole days, anchored at the purchase date.
//
// Whole months advance the calendar with the day of month clamped to the
// last valid day of the target month, so a purchase on January 31 amortized
// over one month runs until February 28. A fractional remainder adds
// round(fraction * 30) days. The result is at least one day.
func DaysFromMonths(start types.Date, months float64) int {
	if months <= 0 {
		return 1
	}

	whole := int(math.Floor(months))
	fraction := months - float64(whole)

	end := addMonthsClamped(start, whole)
	if fraction > 0 {
		end = end.AddDate(0, 0, int(math.Round(fraction*30)))
	}

	days := start.DaysUntil(end)
	if days < 1 {
		return 1
	}

	return days
}

// addMonthsClamped advances the date by whole months without the overflow
// normalization of time.AddDate, clamping the day to the length of the
// target month instead.
func addMonthsClamped(date types.Date, months int) types.Date {
	year := date.Year()
	month := int(date.Month()) + months

	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}

	day := date.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}

	return types.NewDate(year, time.Month(month), day)
}

func daysInMonth(year, month int) int {
	// Day zero of the following month is the last day of this one
	return types.NewDate(year, time.Month(month), 1).AddDate(0, 1, -1).Day()
}
