package models

import (
	"errors"
	"strings"

	"github.com/pocketdiary/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income represents a single income record.
type Income struct {
	DefaultModel
	Description string          // Defaults to the category name when empty
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        types.Date
	Category    string
}

var ErrIncomeAmountNegative = errors.New("income amounts must not be negative")

// BeforeSave trims whitespace and falls back to the category as description.
func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Description = strings.TrimSpace(i.Description)
	i.Category = strings.TrimSpace(i.Category)

	if i.Description == "" {
		i.Description = i.Category
	}

	if i.Amount.IsNegative() {
		return ErrIncomeAmountNegative
	}

	if i.Date.IsZero() {
		i.Date = types.DateOf(nowFunc())
	}

	return nil
}
