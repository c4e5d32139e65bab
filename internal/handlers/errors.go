package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/dexkeeper/api/v1"
	srvErrors "github.com/kubev2v/dexkeeper/pkg/errors"
)

// respondError maps typed errors to status codes. Anything unexpected is
// logged and answered with the generic message.
func respondError(c *gin.Context, name, message string, err error) {
	switch {
	case srvErrors.IsValidationError(err), srvErrors.IsUnknownCreatureError(err):
		c.JSON(http.StatusBadRequest, v1.Error{Error: err.Error()})
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, v1.Error{Error: err.Error()})
	case srvErrors.IsConflictError(err), srvErrors.IsCapacityExceededError(err):
		c.JSON(http.StatusConflict, v1.Error{Error: err.Error()})
	default:
		zap.S().Named(name).Errorw(message, "error", err)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: message})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, v1.Error{Error: message})
}

func respondData[T any](c *gin.Context, status int, data T) {
	c.JSON(status, v1.Envelope[T]{Data: data})
}

// parameterError answers path and query values the generated wrapper could
// not bind.
func parameterError(c *gin.Context, err error, status int) {
	c.JSON(status, v1.Error{Error: err.Error()})
}

func positiveID(c *gin.Context, name string, id int64) bool {
	if id <= 0 {
		badRequest(c, name+" must be a positive integer")
		return false
	}
	return true
}
