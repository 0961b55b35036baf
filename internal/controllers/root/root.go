package root

import (
	"net/http"

	"github.com/envelope-zero/finance-tracker/internal/httputil"
	"github.com/envelope-zero/finance-tracker/internal/models"
	"github.com/envelope-zero/finance-tracker/internal/types"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"`
}

// Links point to the operational endpoints and to the entry points
// of the ledger.
type Links struct {
	Docs         string `json:"docs" example:"https://example.com/api/docs/index.html"`                 // Swagger API documentation
	Healthz      string `json:"healthz" example:"https://example.com/api/healthz"`                      // Healthz endpoint
	Version      string `json:"version" example:"https://example.com/api/version"`                      // Build version and supported currencies
	Metrics      string `json:"metrics" example:"https://example.com/api/metrics"`                      // Prometheus metrics
	V1           string `json:"v1" example:"https://example.com/api/v1"`                                // Link list of the v1 API
	CurrentMonth string `json:"currentMonth" example:"https://example.com/api/v1/months?month=2024-05"` // Budget of the current month
}

// RegisterRoutes serves the link list on the group.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

func newLinks(base string, month types.Month) Links {
	v1 := base + "/v1"

	return Links{
		Docs:         base + "/docs/index.html",
		Healthz:      base + "/healthz",
		Version:      base + "/version",
		Metrics:      base + "/metrics",
		V1:           v1,
		CurrentMonth: v1 + "/months?month=" + month.String(),
	}
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	base := c.GetString(string(models.DBContextURL))
	c.JSON(http.StatusOK, Response{Links: newLinks(base, types.Current())})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
