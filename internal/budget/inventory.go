package budget

import (
	"github.com/pocketdiary/backend/internal/models"
	"github.com/pocketdiary/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// SortMode selects the ordering of the amortized inventory.
//
// swagger:enum SortMode
type SortMode string

const (
	SortByDate     SortMode = "date"     // Newest purchases first
	SortByDuration SortMode = "duration" // Longest amortization first
)

// Item is one amortized expense together with its derived figures.
type Item struct {
	models.Expense

	// DailyCost is the amount spread over the amortization duration.
	DailyCost decimal.Decimal `json:"dailyCost" example:"2.74"`

	// RemainingDays counts from the reference date to the end of the
	// amortization window, zero once it has run out.
	RemainingDays int `json:"remainingDays" example:"310"`
}

// Group is the amortized inventory of one category.
type Group struct {
	Category string `json:"category" example:"Shopping"`
	Items    []Item `json:"items"`
}

// Inventory groups the amortized expenses by category.
//
// Only expenses amortized over more than one day appear; archived ones are
// skipped. Items are ordered by the sort mode, groups by their best-ranked
// item.
func Inventory(expenses []models.Expense, today types.Date, mode SortMode) []Group {
	items := make([]Item, 0)
	for _, expense := range expenses {
		if expense.Duration <= 1 || expense.Archived {
			continue
		}

		remaining := expense.Duration - expense.Date.DaysUntil(today)
		if remaining < 0 {
			remaining = 0
		}

		items = append(items, Item{
			Expense:       expense,
			DailyCost:     expense.Amount.Div(decimal.NewFromInt(int64(expense.Duration))).Round(2),
			RemainingDays: remaining,
		})
	}

	slices.SortStableFunc(items, func(a, b Item) int {
		if mode == SortByDuration && a.Duration != b.Duration {
			return b.Duration - a.Duration
		}

		if a.Date.After(b.Date) {
			return -1
		}
		if b.Date.After(a.Date) {
			return 1
		}

		return 0
	})

	groups := make([]Group, 0)
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, Group{Category: item.Category})
		}

		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}
