package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servtech/authd/internal/common"
)

// response is the JSON envelope every endpoint answers with.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(c *gin.Context, status int, message string, data any) {
	c.JSON(status, response{Success: true, Message: message, Data: data})
}

func fail(c *gin.Context, err error) {
	status, message := statusFor(err)
	c.AbortWithStatusJSON(status, response{Success: false, Message: message})
}

// statusFor maps the core error taxonomy onto HTTP statuses. Internal errors
// answer with a generic message so nothing about the failure leaks out.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrUsernameTaken):
		return http.StatusBadRequest, common.ErrUsernameTaken.Error()
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized, common.ErrInvalidCredentials.Error()
	case errors.Is(err, common.ErrMissingToken):
		return http.StatusUnauthorized, common.ErrMissingToken.Error()
	case errors.Is(err, common.ErrInvalidToken):
		return http.StatusForbidden, common.ErrInvalidToken.Error()
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, "user not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
