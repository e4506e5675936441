package models

import (
	"strings"

	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// MatchRule maps expense descriptions to a category.
//
// Rules are applied to quick entries that do not carry a category: the Match
// glob of the highest-priority matching rule decides the category, which in
// turn decides whether the expense is FIXED or FLEXIBLE.
type MatchRule struct {
	DefaultModel
	Priority uint   // Lower values are applied first
	Match    string // Glob pattern matched against the expense description
	Category string
}

// BeforeSave trims whitespace from all strings.
func (m *MatchRule) BeforeSave(_ *gorm.DB) error {
	m.Match = strings.TrimSpace(m.Match)
	m.Category = strings.TrimSpace(m.Category)
	return nil
}

// Categorize fills in the category and type of an expense that was submitted
// without a category.
//
// The first matching rule in priority order decides the category. The
// expense type follows from the settings: categories in the fixed list make
// the expense FIXED, everything else is FLEXIBLE.
func Categorize(db *gorm.DB, expense *Expense, settings Settings) error {
	if expense.Category == "" {
		var rules []MatchRule
		err := db.Order("priority asc, match asc").Find(&rules).Error
		if err != nil {
			return err
		}

		for _, rule := range rules {
			if glob.Glob(rule.Match, expense.Description) {
				expense.Category = rule.Category
				break
			}
		}
	}

	if expense.Type == "" {
		if slices.Contains(settings.FixedCategories, expense.Category) {
			expense.Type = ExpenseFixed
		} else {
			expense.Type = ExpenseFlexible
		}
	}

	return nil
}
