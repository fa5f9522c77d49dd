package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/pkg/apperrors"
	"github.com/yigit/turmas/internal/pkg/logger"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError maps a ledger error onto its HTTP status and error body.
// Unclassified errors are logged and answered with a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	errors.As(err, &custom)

	status, code := http.StatusInternalServerError, dto.ErrorCodeInternalServer
	switch apperrors.Kind(err) {
	case apperrors.ErrValidationFailed:
		status, code = http.StatusBadRequest, dto.ErrorCodeValidationFailed
	case apperrors.ErrResourceNotFound:
		status, code = http.StatusNotFound, dto.ErrorCodeResourceNotFound
	case apperrors.ErrConflict:
		status, code = http.StatusConflict, dto.ErrorCodeResourceConflict
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error while serving request")
		_ = c.Error(err)
		c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)))
		return
	}

	detail := dto.NewErrorDetail(code, err.Error())
	if custom != nil {
		detail.WithField(custom.Field).WithReason(custom.Code)
	}
	if status == http.StatusBadRequest {
		detail.WithSeverity(dto.ErrorSeverityWarning)
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}

// HandleBindError answers a request whose body could not be bound
func HandleBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(validationErrorDetail(verrs)))
		return
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeMalformedRequest, "Invalid request format").
		WithSeverity(dto.ErrorSeverityWarning).
		WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
