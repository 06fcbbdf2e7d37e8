package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-nest/cmd/api/auth"
	"blog-nest/cmd/api/dto"
	"blog-nest/cmd/api/services"
	"blog-nest/cmd/api/trace"
	"blog-nest/internal/logger"
)

const (
	unauthorizedMessage  = "unauthorized access"
	internalErrorMessage = "internal server error"
)

// errorStatuses is checked in order; the first sentinel err matches decides the response.
var errorStatuses = []struct {
	err    error
	status int
}{
	{auth.ErrMissingToken, http.StatusUnauthorized},
	{auth.ErrInvalidToken, http.StatusUnauthorized},
	{auth.ErrExpiredToken, http.StatusUnauthorized},
	{services.ErrSignInRequired, http.StatusUnauthorized},
	{services.ErrForbidden, http.StatusForbidden},
	{services.ErrBlogNotFound, http.StatusNotFound},
	{services.ErrEntryNotFound, http.StatusNotFound},
	{services.ErrDuplicateEntry, http.StatusConflict},
	{services.ErrInvalidID, http.StatusBadRequest},
	{services.ErrMissingEmail, http.StatusBadRequest},
	{auth.ErrMissingEmail, http.StatusBadRequest},
}

// statusFor returns the status for err and the message shown to the client.
func statusFor(err error) (int, string) {
	for _, e := range errorStatuses {
		if !errors.Is(err, e.err) {
			continue
		}
		if e.status == http.StatusUnauthorized && e.err != services.ErrSignInRequired {
			return e.status, unauthorizedMessage
		}
		return e.status, e.err.Error()
	}
	return http.StatusInternalServerError, internalErrorMessage
}

// respondError writes the JSON error for err. Unknown errors are logged with
// the request id and never shown to the client.
func respondError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		logger.ErrorWithFields("request failed", logger.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
		})
	}
	c.JSON(status, dto.ErrorResponseDTO{Error: msg})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: msg})
}
