package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketdiary/backend/internal/budget"
	"github.com/pocketdiary/backend/internal/httputil"
	"github.com/pocketdiary/backend/internal/models"
	"github.com/pocketdiary/backend/internal/types"
)

type InventoryResponse struct {
	Data  []budget.Group `json:"data"`                                                                     // Amortized expenses grouped by category
	Error *string        `json:"error" example:"the sortBy parameter must be one of 'date' or 'duration'"` // The error, if any occurred
}

// RegisterInventoryRoutes registers the routes for the inventory with
// the RouterGroup that is passed.
func RegisterInventoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsInventory)
	r.GET("", GetInventory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Inventory
// @Success		204
// @Router			/v1/inventory [options]
func OptionsInventory(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get inventory
// @Description	Returns the amortized expenses grouped by category
// @Tags			Inventory
// @Produce		json
// @Success		200		{object}	InventoryResponse
// @Failure		400		{object}	InventoryResponse
// @Failure		500		{object}	InventoryResponse
// @Param			sortBy	query		string	false	"Sort order, 'date' (default) or 'duration'"
// @Router			/v1/inventory [get]
func GetInventory(c *gin.Context) {
	mode := budget.SortByDate
	switch c.DefaultQuery("sortBy", string(budget.SortByDate)) {
	case string(budget.SortByDate):
	case string(budget.SortByDuration):
		mode = budget.SortByDuration
	default:
		s := errSortByInvalid.Error()
		c.JSON(http.StatusBadRequest, InventoryResponse{
			Error: &s,
		})
		return
	}

	var expenses []models.Expense
	err := models.DB.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InventoryResponse{
			Error: &s,
		})
		return
	}

	groups := budget.Inventory(expenses, types.DateOf(time.Now()), mode)
	c.JSON(http.StatusOK, InventoryResponse{Data: groups})
}
