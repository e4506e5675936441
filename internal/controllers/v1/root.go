package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketdiary/backend/internal/httputil"
	"github.com/pocketdiary/backend/internal/models"
)

// RegisterRootRoutes registers the v1 root routes with the RouterGroup
// that is passed.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Dashboard  string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`    // URL of the daily figures endpoint
	Expenses   string `json:"expenses" example:"https://example.com/api/v1/expenses"`      // URL of the expense collection endpoint
	Incomes    string `json:"incomes" example:"https://example.com/api/v1/incomes"`        // URL of the income collection endpoint
	Inventory  string `json:"inventory" example:"https://example.com/api/v1/inventory"`    // URL of the amortized inventory endpoint
	MatchRules string `json:"matchRules" example:"https://example.com/api/v1/match-rules"` // URL of the match rule collection endpoint
	Settings   string `json:"settings" example:"https://example.com/api/v1/settings"`      // URL of the settings endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Dashboard:  url + "/v1/dashboard",
			Expenses:   url + "/v1/expenses",
			Incomes:    url + "/v1/incomes",
			Inventory:  url + "/v1/inventory",
			MatchRules: url + "/v1/match-rules",
			Settings:   url + "/v1/settings",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
