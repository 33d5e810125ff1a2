package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jdrincon/acadplan/internal/app/models/dto"
	"github.com/jdrincon/acadplan/internal/pkg/apperrors"
	"github.com/jdrincon/acadplan/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Catalog
// integrity failures map to 422 because the request was well-formed but the
// stored catalog cannot support it.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrProgramNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Program not found", err)
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found", err)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found", err)
	case errors.Is(err, apperrors.ErrCatalogIntegrity):
		respond(c, http.StatusUnprocessableEntity, dto.ErrorCodeCatalogIntegrity, "Catalog integrity violation", err)
	case errors.Is(err, apperrors.ErrInvalidConfiguration):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidConfiguration, "Invalid semester configuration", err)
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed", err)
	case errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Bad request", err)
	case errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceInvalid, "Resource conflict", err)
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error", nil)
	}
}

// respond writes the error envelope, preferring the wrapped message when the
// error carries one.
func respond(c *gin.Context, status int, code dto.ErrorCode, fallback string, err error) {
	message := fallback
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
