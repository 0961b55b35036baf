package v1

import (
	"net/http"

	"github.com/envelope-zero/finance-tracker/internal/httputil"
	"github.com/envelope-zero/finance-tracker/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budgets  string `json:"budgets" example:"https://example.com/api/v1/budgets"`   // URL of Budget collection endpoint
	Months   string `json:"months" example:"https://example.com/api/v1/months"`     // URL of Month endpoint
	Incomes  string `json:"incomes" example:"https://example.com/api/v1/incomes"`   // URL of Income collection endpoint
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses"` // URL of Expense collection endpoint
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
			Budgets:  url + "/v1/budgets",
			Months:   url + "/v1/months",
			Incomes:  url + "/v1/incomes",
			Expenses: url + "/v1/expenses",
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
