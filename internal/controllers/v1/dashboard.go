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

// memo caches the last breakdown so that dashboard polling does not redo
// the computation
var memo budget.Memo

type DashboardResponse struct {
	Data  *budget.Breakdown `json:"data"`                                                         // The daily figures
	Error *string           `json:"error" example:"dates must be specified in YYYY-MM-DD format"` // The error, if any occurred
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the daily budget figures for a reference date, defaulting to today
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	DashboardResponse
// @Failure		400		{object}	DashboardResponse
// @Failure		500		{object}	DashboardResponse
// @Param			date	query		string	false	"Reference date, YYYY-MM-DD. Defaults to today."
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	today := types.DateOf(time.Now())
	if raw := c.Query("date"); raw != "" {
		parsed, err := types.ParseDate(raw)
		if err != nil {
			s := errDateInvalid.Error()
			c.JSON(http.StatusBadRequest, DashboardResponse{
				Error: &s,
			})
			return
		}
		today = parsed
	}

	breakdown, err := ComputeBreakdown(today)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &breakdown})
}

// ComputeBreakdown loads the settings and expenses and runs the allocation
// for the given reference date. It is shared with the settlement service.
func ComputeBreakdown(today types.Date) (budget.Breakdown, error) {
	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		return budget.Breakdown{}, err
	}

	var expenses []models.Expense
	err = models.DB.Find(&expenses).Error
	if err != nil {
		return budget.Breakdown{}, err
	}

	return memo.Compute(expenses, settings, today), nil
}
