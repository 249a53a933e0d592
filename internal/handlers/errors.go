package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker_api/internal/apperrors"
	"github.com/SscSPs/expense_tracker_api/internal/core/services"
	"github.com/SscSPs/expense_tracker_api/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const internalErrorMessage = "Internal server error"

// respondError maps a service error onto its HTTP status. Unclassified errors
// are logged and answered with a generic 500.
func respondError(c *gin.Context, logger *slog.Logger, err error, op string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		logger.Error(op+" failed", slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: internalErrorMessage})
		return
	}
	logger.Warn(op+" rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

// respondBindError answers a failed JSON bind: 413 when the body limit
// tripped, 400 otherwise.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		logger.Warn("Request body too large", slog.Int64("limit", maxErr.Limit))
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "Request body too large"})
		return
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		respondError(c, logger, services.AsValidationError(err), "Request validation")
		return
	}
	logger.Warn("Failed to bind JSON", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
}
