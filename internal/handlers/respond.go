package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
)

// respondSuccess writes the success envelope.
func respondSuccess(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, dto.NewSuccessResponse(statusCode, data, message))
}

// errorKindForStatus maps an HTTP status to the machine-readable error kind
// carried in the envelope.
func errorKindForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		return "INTERNAL"
	}
}

// respondError translates service errors into the error envelope. Unrecognized
// errors collapse to 500 with the fallback message so internals never leak.
func respondError(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	message := fallback

	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		status = appErr.Code
		message = appErr.Message
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		message = "resource not found"
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = "unauthorized"
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
		message = "forbidden"
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
		message = "resource already exists"
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
		message = "invalid request"
	}

	if status >= http.StatusInternalServerError {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("request failed",
			slog.Int("status", status), slog.String("error", err.Error()))
	}

	c.JSON(status, dto.NewErrorResponse(status, message, errorKindForStatus(status)))
}

// respondBindError writes a 400 envelope for request binding failures.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest,
		dto.NewErrorResponse(http.StatusBadRequest, "invalid request format: "+err.Error(), "BAD_REQUEST"))
}

// requireUserID pulls the authenticated user from the context, writing a 401
// envelope when absent.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(http.StatusUnauthorized, "authentication required", "UNAUTHORIZED"))
	}
	return userID, ok
}
