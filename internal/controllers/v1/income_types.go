package v1

import (
	"fmt"

	"github.com/pocketdiary/backend/internal/models"
	"github.com/pocketdiary/backend/internal/types"
	"github.com/shopspring/decimal"
)

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	Description string          `json:"description" example:"March salary" default:""` // Description, defaults to the category name
	Amount      decimal.Decimal `json:"amount" example:"2800" minimum:"0.00000001"`    // Amount received
	Date        types.Date      `json:"date" example:"2024-03-01"`                     // Day the income arrived, defaults to today
	Category    string          `json:"category" example:"Salary" default:""`          // Category of the income
}

func (editable IncomeEditable) model() models.Income {
	return models.Income{
		Description: editable.Description,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Category:    editable.Category,
	}
}

type IncomeLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/incomes/ae4b8b48-3f46-49a6-b36d-4a53301c4cc4"`            // The income itself
	Convert string `json:"convert" example:"https://example.com/api/v1/incomes/ae4b8b48-3f46-49a6-b36d-4a53301c4cc4/convert"` // Turns the income into an expense
}

type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

func newIncome(url string, model models.Income) Income {
	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			Description: model.Description,
			Amount:      model.Amount,
			Date:        model.Date,
			Category:    model.Category,
		},
		Links: IncomeLinks{
			Self:    fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
			Convert: fmt.Sprintf("%s/v1/incomes/%s/convert", url, model.ID),
		},
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of incomes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Data  []IncomeResponse `json:"data"`                                                          // List of the created incomes or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                          // Data for the income
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	Category string `form:"category"`                   // By category
	From     string `form:"from" filterField:"false"`   // Earliest date, YYYY-MM-DD
	Until    string `form:"until" filterField:"false"`  // Latest date, YYYY-MM-DD
	Search   string `form:"search" filterField:"false"` // Search for this text in the description
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first income returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of incomes to return. Defaults to 50.
}

func (f IncomeQueryFilter) model() models.Income {
	return models.Income{
		Category: f.Category,
	}
}
