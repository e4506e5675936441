package models

import (
	"errors"
	"time"

	"github.com/pocketdiary/backend/internal/categories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Settings is the budget configuration.
//
// There is exactly one row, seeded with zero budgets on first connect; a
// zero TotalBudget means the app has not been configured yet. Settings are
// read and replaced wholesale, never patched field by field.
type Settings struct {
	DefaultModel
	TotalBudget    decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Total money available for the month
	FixedBudget    decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Sum of recurring fixed obligations
	SavingsGoal    decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Reserved amount, not available for daily spending
	MonthStartDay  int             `gorm:"default:1"`          // Day of month a billing cycle begins, 1-28
	SettlementTime string          // Local time of the daily settlement summary, "HH:mm"

	FixedCategories    categories.Set `gorm:"serializer:json"`
	FlexibleCategories categories.Set `gorm:"serializer:json"`
	IncomeCategories   categories.Set `gorm:"serializer:json"`
}

var (
	ErrSettlementTimeInvalid = errors.New("the settlement time must be in HH:mm format")
	ErrBudgetNegative        = errors.New("budget amounts must not be negative")
)

const defaultSettlementTime = "22:00"

// BeforeSave validates the settings.
//
// MonthStartDay is clamped into 1-28 so that every month of the year
// contains the cycle start day.
func (s *Settings) BeforeSave(_ *gorm.DB) error {
	if s.MonthStartDay < 1 {
		s.MonthStartDay = 1
	}
	if s.MonthStartDay > 28 {
		s.MonthStartDay = 28
	}

	if s.SettlementTime == "" {
		s.SettlementTime = defaultSettlementTime
	}

	if _, err := time.Parse("15:04", s.SettlementTime); err != nil {
		return ErrSettlementTimeInvalid
	}

	if s.TotalBudget.IsNegative() || s.FixedBudget.IsNegative() || s.SavingsGoal.IsNegative() {
		return ErrBudgetNegative
	}

	return nil
}

// FlexiblePool returns the amount available for daily rationing.
//
// A misconfigured budget can make the pool negative. It is returned
// unclamped; displayed figures downstream clamp their own results.
func (s Settings) FlexiblePool() decimal.Decimal {
	return s.TotalBudget.Sub(s.FixedBudget).Sub(s.SavingsGoal)
}

// Configured reports whether the initial setup has happened.
func (s Settings) Configured() bool {
	return !s.TotalBudget.IsZero()
}

// defaultSettings returns the settings seeded on first connect.
func defaultSettings() Settings {
	return Settings{
		MonthStartDay:      1,
		SettlementTime:     defaultSettlementTime,
		FixedCategories:    categories.NewSet("Rent", "Subscriptions", "Insurance", "Internet", "Phone"),
		FlexibleCategories: categories.NewSet("Food", "Home", "Transport", "Shopping", "Entertainment", "Skincare", "Learning"),
		IncomeCategories:   categories.NewSet("Salary", "Side job", "Bonus", "Investment", "Gift", "Other"),
	}
}

// LoadSettings returns the settings row, creating it with defaults if it
// does not exist yet.
func LoadSettings(db *gorm.DB) (Settings, error) {
	var settings Settings

	err := db.First(&settings).Error
	if err == nil {
		return settings, nil
	}

	if !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		return Settings{}, err
	}

	settings = defaultSettings()
	err = db.Create(&settings).Error
	if err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// ReplaceSettings overwrites the settings row wholesale, keeping its identity.
func ReplaceSettings(db *gorm.DB, settings Settings) (Settings, error) {
	current, err := LoadSettings(db)
	if err != nil {
		return Settings{}, err
	}

	settings.DefaultModel = current.DefaultModel
	err = db.Save(&settings).Error
	if err != nil {
		return Settings{}, err
	}

	return settings, nil
}
