package v1

import (
	"fmt"

	"github.com/pocketdiary/backend/internal/models"
	"github.com/pocketdiary/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Description string             `json:"description" example:"Groceries" default:""`           // Description, defaults to the category name
	Amount      decimal.Decimal    `json:"amount" example:"14.50" minimum:"0.00000001"`          // Amount spent
	Date        types.Date         `json:"date" example:"2024-03-18"`                            // Day the expense occurred, defaults to today
	Type        models.ExpenseType `json:"type" example:"FLEXIBLE" default:""`                   // FIXED or FLEXIBLE, derived from the category when empty
	Category    string             `json:"category" example:"Food" default:""`                   // Category, resolved via match rules when empty
	Duration    int                `json:"duration" example:"365" minimum:"1" default:"1"`       // Days the expense is amortized over
	Archived    bool               `json:"archived" example:"true" default:"false"`              // Is the expense hidden from the inventory?
	Months      float64            `json:"months" example:"12" minimum:"0" swaggerignore:"true"` // Amortization given in months, converted to Duration
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Description: editable.Description,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Type:        editable.Type,
		Category:    editable.Category,
		Duration:    editable.Duration,
		Archived:    editable.Archived,
	}
}

type ExpenseLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/expenses/d430d7c3-d14c-4712-9336-ee56965a6673"`            // The expense itself
	Convert string `json:"convert" example:"https://example.com/api/v1/expenses/d430d7c3-d14c-4712-9336-ee56965a6673/convert"` // Turns the expense into an income
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

func newExpense(url string, model models.Expense) Expense {
	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Description: model.Description,
			Amount:      model.Amount,
			Date:        model.Date,
			Type:        model.Type,
			Category:    model.Category,
			Duration:    model.Duration,
			Archived:    model.Archived,
		},
		Links: ExpenseLinks{
			Self:    fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Convert: fmt.Sprintf("%s/v1/expenses/%s/convert", url, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Category string `form:"category"`                   // By category
	Type     string `form:"type"`                       // FIXED or FLEXIBLE
	Archived bool   `form:"archived"`                   // Is the expense archived?
	From     string `form:"from" filterField:"false"`   // Earliest date, YYYY-MM-DD
	Until    string `form:"until" filterField:"false"`  // Latest date, YYYY-MM-DD
	Search   string `form:"search" filterField:"false"` // Search for this text in the description
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first expense returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		Category: f.Category,
		Type:     models.ExpenseType(f.Type),
		Archived: f.Archived,
	}
}
