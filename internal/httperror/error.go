// Package httperror contains the error body returned by the API for requests
// that do not reach a resource handler.
package httperror

import (
	"github.com/gin-gonic/gin"
)

type Error struct {
	Message string `json:"error" example:"This HTTP method is not allowed for the endpoint you called"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// Abort writes the error with the status and stops the handler chain.
func Abort(c *gin.Context, status int, e error) {
	c.AbortWithStatusJSON(status, New(e))
}
