package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/AtharPnh/e-commerce-application/internal/common/apierrors"
	"github.com/AtharPnh/e-commerce-application/internal/common/apiresponses"
)

// ErrorHandler translates errors escaping a handler into the standard error
// envelope. AppError carries its own code and status; anything else becomes
// an opaque 500 so internals never leak to clients.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		statusCode := http.StatusInternalServerError
		code := apierrors.ErrCodeUnknown
		message := "An unexpected error occurred. Please try again later."
		var details map[string]any

		var appErr *apierrors.AppError
		var fiberErr *fiber.Error
		if errors.As(err, &appErr) {
			statusCode = appErr.HTTPStatus()
			code = appErr.Code
			message = appErr.Message
			details = appErr.Context
		} else if errors.As(err, &fiberErr) {
			statusCode = fiberErr.Code
			message = fiberErr.Message
		}

		logLevel := slog.LevelError
		if statusCode < http.StatusInternalServerError {
			logLevel = slog.LevelWarn
		}

		ctx := c.UserContext()
		if span := oteltrace.SpanFromContext(ctx); span.IsRecording() {
			span.RecordError(err)
			span.SetStatus(codes.Error, message)
			span.SetAttributes(attribute.String("error.code", code))
		}

		logger.Log(ctx, logLevel, "Request failed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status_code", statusCode),
			slog.String("error_code", code),
			slog.String("error", err.Error()),
		)

		return c.Status(statusCode).JSON(apiresponses.ErrorResponse{
			Status: "error",
			Error: apiresponses.ErrorDetail{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}
}
