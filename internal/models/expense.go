package models

import (
	"errors"
	"strings"

	"github.com/pocketdiary/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseType determines how an expense takes part in the daily allocation.
//
// FLEXIBLE expenses are rationed against the flexible pool; FIXED expenses
// are covered by the fixed budget and excluded from the daily figures
// entirely.
//
// swagger:enum ExpenseType
type ExpenseType string

const (
	ExpenseFixed    ExpenseType = "FIXED"
	ExpenseFlexible ExpenseType = "FLEXIBLE"
)

// Expense represents a single spend record.
type Expense struct {
	DefaultModel
	Description string          // Defaults to the category name when empty
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        types.Date
	Type        ExpenseType `gorm:"default:FLEXIBLE"`
	Category    string
	Duration    int  `gorm:"default:1"` // Days the expense is amortized over, always >= 1
	Archived    bool // Archived amortized items are kept but hidden from the inventory
}

var (
	ErrExpenseAmountNegative = errors.New("expense amounts must not be negative")
	ErrExpenseTypeInvalid    = errors.New("the expense type must be FIXED or FLEXIBLE")
)

// BeforeSave ensures consistency for the expense.
//
// It trims whitespace from all strings, falls back to the category as
// description and floors the amortization duration at a single day.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Category = strings.TrimSpace(e.Category)

	if e.Description == "" {
		e.Description = e.Category
	}

	if e.Type == "" {
		e.Type = ExpenseFlexible
	}

	if e.Type != ExpenseFixed && e.Type != ExpenseFlexible {
		return ErrExpenseTypeInvalid
	}

	if e.Amount.IsNegative() {
		return ErrExpenseAmountNegative
	}

	if e.Duration < 1 {
		e.Duration = 1
	}

	if e.Date.IsZero() {
		e.Date = types.DateOf(nowFunc())
	}

	return nil
}
