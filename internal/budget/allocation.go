package budget

import (
	"github.com/pocketdiary/backend/internal/models"
	"github.com/pocketdiary/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Breakdown holds the daily figures for one reference date.
type Breakdown struct {
	Date  types.Date `json:"date" example:"2024-03-18"`
	Cycle Cycle      `json:"cycle"`

	FlexiblePool decimal.Decimal `json:"flexiblePool" example:"3100"`

	// DailyBudget is the amount available today. It redistributes the pool
	// that is left after all spending before today over the remaining days,
	// so underspending yesterday raises it and overspending lowers it.
	DailyBudget decimal.Decimal `json:"dailyBudget" example:"140.91"`

	// TomorrowBudget is the projection for tomorrow, assuming no further
	// spending today.
	TomorrowBudget decimal.Decimal `json:"tomorrowBudget" example:"131.82"`

	TodaySpent decimal.Decimal `json:"todaySpent" example:"12.5"`
	TotalSpent decimal.Decimal `json:"totalSpent" example:"200"`

	// TodaySaved compares today's spending against the flat average daily
	// budget, not against the rolling DailyBudget. It goes negative on
	// overspent days.
	TodaySaved decimal.Decimal `json:"todaySaved" example:"128.41"`
	TotalSaved decimal.Decimal `json:"totalSaved" example:"645.45"`

	TodayExpenses []models.Expense `json:"todayExpenses"`
}

// Compute calculates the daily figures for the reference date.
//
// Only FLEXIBLE expenses dated within the resolved cycle take part. FIXED
// expenses are already accounted for in the fixed budget and amortized
// expenses count in full on their purchase date.
func Compute(expenses []models.Expense, settings models.Settings, today types.Date) Breakdown {
	cycle := ResolveCycle(today, settings.MonthStartDay)
	pool := settings.FlexiblePool()

	var spentBefore, todaySpent decimal.Decimal
	todayExpenses := make([]models.Expense, 0)

	for _, expense := range expenses {
		if expense.Type != models.ExpenseFlexible || !cycle.Contains(expense.Date) {
			continue
		}

		if expense.Date.Before(today) {
			spentBefore = spentBefore.Add(expense.Amount)
		} else if expense.Date.Equal(today) {
			todaySpent = todaySpent.Add(expense.Amount)
			todayExpenses = append(todayExpenses, expense)
		}
	}

	totalSpent := spentBefore.Add(todaySpent)
	totalDays := cycle.TotalDays()
	daysLeft := today.DaysUntil(cycle.End) + 1

	daily := clampZero(pool.Sub(spentBefore).Div(decimal.NewFromInt(int64(daysLeft))))

	// On the last cycle day there is no tomorrow to ration for, so the
	// projection falls back to the flat average of a fresh cycle.
	var tomorrow decimal.Decimal
	if daysLeft > 1 {
		tomorrow = clampZero(pool.Sub(totalSpent).Div(decimal.NewFromInt(int64(daysLeft - 1))))
	} else {
		tomorrow = clampZero(pool.Div(decimal.NewFromInt(int64(totalDays))))
	}

	average := pool.Div(decimal.NewFromInt(int64(totalDays)))
	daysPassed := totalDays - daysLeft + 1

	return Breakdown{
		Date:           today,
		Cycle:          cycle,
		FlexiblePool:   pool,
		DailyBudget:    daily,
		TomorrowBudget: tomorrow,
		TodaySpent:     todaySpent,
		TotalSpent:     totalSpent,
		TodaySaved:     average.Sub(todaySpent),
		TotalSaved:     average.Mul(decimal.NewFromInt(int64(daysPassed))).Sub(totalSpent),
		TodayExpenses:  todayExpenses,
	}
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}

	return d
}
