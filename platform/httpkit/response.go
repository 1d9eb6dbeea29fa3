// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"errors"
	"net/http"

	"starzcrm_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Error sends an error response with the given status code and message.
func Error(c *gin.Context, status int, message string, details any) {
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// HandleError maps domain errors to HTTP responses.
// A *apperr.Error anywhere in the chain decides the status code; internal
// errors never expose their cause. Anything else is a 500.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	_ = c.Error(err)

	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		message := domainErr.Message
		if domainErr.Kind == apperr.KindInternal || message == "" {
			message = http.StatusText(domainErr.HTTPStatus())
		}
		c.JSON(domainErr.HTTPStatus(), ErrorResponse{
			Error:   message,
			Details: domainErr.Details,
		})
		return true
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	return true
}
