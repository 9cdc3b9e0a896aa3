package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	businessdomain "github.com/smallbiznis/reviewqr/internal/business/domain"
	"github.com/smallbiznis/reviewqr/internal/observability/logger"
	"github.com/smallbiznis/reviewqr/internal/observability/tracing"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
	"go.uber.org/zap"
)

type apiError struct {
	Status  int               `json:"-"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *apiError) Error() string { return e.Code }

var (
	ErrUnauthorized    = &apiError{Status: http.StatusUnauthorized, Code: "unauthorized", Message: "unauthorized"}
	ErrForbidden       = &apiError{Status: http.StatusForbidden, Code: "forbidden", Message: "forbidden"}
	ErrNotFound        = &apiError{Status: http.StatusNotFound, Code: "not_found", Message: "not found"}
	ErrTooManyRequests = &apiError{Status: http.StatusTooManyRequests, Code: "rate_limited", Message: "too many requests"}
)

func invalidRequestError() *apiError {
	return &apiError{Status: http.StatusBadRequest, Code: "invalid_request", Message: "invalid request"}
}

func newValidationError(field, code, message string) *apiError {
	return &apiError{
		Status:  http.StatusBadRequest,
		Code:    code,
		Message: message,
		Fields:  map[string]string{"field": field},
	}
}

// AbortWithError maps domain errors onto the JSON error envelope. Anything
// unrecognized is a 500 with no internal detail leaked.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
		return
	}

	switch {
	case errors.Is(err, businessdomain.ErrNotFound), errors.Is(err, businessdomain.ErrInvalidID):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "not_found", "message": "not found"}})
	case errors.Is(err, businessdomain.ErrNotOwner):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": gin.H{"code": "forbidden", "message": "forbidden"}})
	case isBusinessValidationError(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": err.Error(), "message": "invalid request"}})
	case errors.Is(err, posterdomain.ErrTemplateNotFound):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "template_not_found", "message": "unknown templateId"}})
	case errors.Is(err, posterdomain.ErrUnsupportedFormat):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "unsupported_format", "message": "unsupported format"}})
	default:
		if loggable := tracing.SafeError(err); loggable != nil {
			logger.FromContext(c.Request.Context()).Error("request failed", zap.Error(loggable))
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "internal error"}})
	}
}

func isBusinessValidationError(err error) bool {
	switch {
	case errors.Is(err, businessdomain.ErrInvalidName),
		errors.Is(err, businessdomain.ErrInvalidReviewURL):
		return true
	}
	return false
}
