package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oclock/event_backend/internal/apperrors"
	"github.com/oclock/event_backend/internal/dto"
	"github.com/oclock/event_backend/internal/middleware"
)

// respondError maps a service error to the HTTP status and stable error code
// of the response body. Unrecognised errors become a 500 with a generic
// message so internal details never reach the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{ErrorCode: apperrors.CodeEmptyInput, Message: err.Error()})
	case errors.Is(err, apperrors.ErrDateFormat):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{ErrorCode: apperrors.CodeInvalidDateFormat, Message: err.Error()})
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{ErrorCode: apperrors.CodeBadRequest, Message: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{ErrorCode: apperrors.CodeNotFound, Message: err.Error()})
	case errors.Is(err, apperrors.ErrFunctional):
		c.JSON(http.StatusConflict, dto.ErrorResponse{ErrorCode: apperrors.CodeFunctionalError, Message: err.Error()})
	case errors.Is(err, apperrors.ErrDatabaseConstraint):
		c.JSON(http.StatusConflict, dto.ErrorResponse{ErrorCode: apperrors.CodeDatabaseError, Message: err.Error()})
	case errors.Is(err, apperrors.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{ErrorCode: apperrors.CodeInvalidCredentials, Message: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{ErrorCode: apperrors.CodeUnauthorized, Message: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{ErrorCode: apperrors.CodeAccessDenied, Message: err.Error()})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{ErrorCode: apperrors.CodeInternalServerError, Message: "An unexpected error occurred"})
	}
}

// respondBindingError covers request body parsing and validation failures.
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{ErrorCode: apperrors.CodeBadRequest, Message: "invalid request body: " + err.Error()})
}
