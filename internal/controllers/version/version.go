package version

import (
	"net/http"
	"slices"

	"github.com/envelope-zero/finance-tracker/internal/httputil"
	"github.com/envelope-zero/finance-tracker/internal/money"
	"github.com/envelope-zero/finance-tracker/internal/types"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Data Info `json:"data"`
}

// Info describes the running server.
type Info struct {
	Version    string           `json:"version" example:"1.1.0"`                      // Build version of the server
	Currencies []money.Currency `json:"currencies" example:"GBP"`                     // Currencies that amounts can be recorded in
	Month      types.Month      `json:"month" swaggertype:"string" example:"2024-05"` // Month that records without a month are booked in
}

type handler struct {
	version string
}

// RegisterRoutes serves the build version on the group.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	h := handler{version: version}

	r.GET("", h.get)
	r.OPTIONS("", h.options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func (handler) options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Server information
// @Description	Returns the build version, the supported currencies and the current month
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func (h handler) get(c *gin.Context) {
	currencies := money.Supported()
	slices.Sort(currencies)

	c.JSON(http.StatusOK, Response{
		Data: Info{
			Version:    h.version,
			Currencies: currencies,
			Month:      types.Current(),
		},
	})
}
