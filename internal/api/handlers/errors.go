package handlers

import (
	"net/http"

	apperrors "fourdx-backend/internal/errors"
	"fourdx-backend/internal/logger"
	"fourdx-backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// statusFor maps a service error to its HTTP status
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err), apperrors.IsAmbiguous(err):
		return http.StatusConflict
	case apperrors.IsStore(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs a failed operation and writes the error body.
// Domain rejections are logged at warn, everything else at error.
func respondError(c *gin.Context, operation string, err error) {
	status := statusFor(err)
	metrics.RecordOperationFailure(operation, status)
	log := logger.WithContext(c).WithField("operation", operation).WithError(err)
	if status >= http.StatusInternalServerError {
		log.Error("operation failed")
	} else {
		log.Warn("operation rejected")
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// badRequest answers a malformed request body or query
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}
