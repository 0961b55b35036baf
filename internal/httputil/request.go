package httputil

import (
	"errors"
	"fmt"
	"io"

	"github.com/envelope-zero/finance-tracker/internal/money"
	"github.com/envelope-zero/finance-tracker/internal/types"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// publicErrors are decoding errors whose message is returned to the client.
var publicErrors = []error{
	money.ErrUnsupportedCurrency,
	money.ErrInvalidAmount,
	types.ErrInvalidMonthFormat,
}

// BindData binds the data from the request to the struct passed in the interface.
//
// Errors from decoding are logged and replaced with ErrInvalidBody, unless
// they carry information for the client, e.g. an unsupported currency.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())

		for _, public := range publicErrors {
			if errors.Is(err, public) {
				return fmt.Errorf("%w: %w", ErrInvalidBody, err)
			}
		}

		return ErrInvalidBody
	}

	return nil
}

// BindQuery binds the query string to the filter struct.
func BindQuery(c *gin.Context, filter interface{}) error {
	if err := c.ShouldBindQuery(filter); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	return nil
}
