package v1

import (
	"fmt"

	"github.com/pocketdiary/backend/internal/categories"
	"github.com/pocketdiary/backend/internal/models"
	"github.com/shopspring/decimal"
)

// SettingsEditable represents all user configurable parameters
type SettingsEditable struct {
	TotalBudget    decimal.Decimal `json:"totalBudget" example:"3800" minimum:"0"`             // Total money available for the month
	FixedBudget    decimal.Decimal `json:"fixedBudget" example:"450" minimum:"0"`              // Sum of recurring fixed obligations
	SavingsGoal    decimal.Decimal `json:"savingsGoal" example:"250" minimum:"0"`              // Reserved amount, not available for daily spending
	MonthStartDay  int             `json:"monthStartDay" example:"5" minimum:"1" maximum:"28"` // Day of month a billing cycle begins
	SettlementTime string          `json:"settlementTime" example:"22:00"`                     // Local time of the daily settlement summary

	FixedCategories    categories.Set `json:"fixedCategories" example:"Rent,Insurance"`    // Ordered category list for fixed expenses
	FlexibleCategories categories.Set `json:"flexibleCategories" example:"Food,Transport"` // Ordered category list for flexible expenses
	IncomeCategories   categories.Set `json:"incomeCategories" example:"Salary,Bonus"`     // Ordered category list for incomes
}

func (editable SettingsEditable) model() models.Settings {
	return models.Settings{
		TotalBudget:        editable.TotalBudget,
		FixedBudget:        editable.FixedBudget,
		SavingsGoal:        editable.SavingsGoal,
		MonthStartDay:      editable.MonthStartDay,
		SettlementTime:     editable.SettlementTime,
		FixedCategories:    editable.FixedCategories,
		FlexibleCategories: editable.FlexibleCategories,
		IncomeCategories:   editable.IncomeCategories,
	}
}

type SettingsLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/settings"`                        // The settings themselves
	Categories string `json:"categories" example:"https://example.com/api/v1/settings/categories/fixed"` // Base URL of the category class endpoints
}

type Settings struct {
	models.DefaultModel
	SettingsEditable

	// Configured is false until a total budget has been set
	Configured bool `json:"configured" example:"true"`

	Links SettingsLinks `json:"links"`
}

func newSettings(url string, model models.Settings) Settings {
	return Settings{
		DefaultModel: model.DefaultModel,
		SettingsEditable: SettingsEditable{
			TotalBudget:        model.TotalBudget,
			FixedBudget:        model.FixedBudget,
			SavingsGoal:        model.SavingsGoal,
			MonthStartDay:      model.MonthStartDay,
			SettlementTime:     model.SettlementTime,
			FixedCategories:    model.FixedCategories,
			FlexibleCategories: model.FlexibleCategories,
			IncomeCategories:   model.IncomeCategories,
		},
		Configured: model.Configured(),
		Links: SettingsLinks{
			Self:       fmt.Sprintf("%s/v1/settings", url),
			Categories: fmt.Sprintf("%s/v1/settings/categories", url),
		},
	}
}

type SettingsResponse struct {
	Data  *Settings `json:"data"`                                                // The settings
	Error *string   `json:"error" example:"budget amounts must not be negative"` // The error, if any occurred
}

type URIClass struct {
	Class string `uri:"class" binding:"required" example:"fixed"` // Category class: fixed, flexible or income
}

type CategoryAddRequest struct {
	Name string `json:"name" example:"Pets"` // Name of the category to add
}

type CategoryRenameRequest struct {
	Name    string `json:"name" example:"Food"`          // Current name of the category
	NewName string `json:"newName" example:"Eating out"` // New name of the category
}

type CategoryReorderRequest struct {
	Names []string `json:"names" example:"Food,Transport,Shopping"` // The complete category list in its new order
}

type CategorySetResponse struct {
	Data  []string `json:"data"`                                                // The ordered category list after the operation
	Error *string  `json:"error" example:"there is no category with this name"` // The error, if any occurred
}
