package middleware

import (
	"log/slog"
	"net/http"

	"userapi/internal/delivery/api/response"
	deliverycontext "userapi/internal/delivery/context"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware is the single place that turns errors into responses.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Unclassified errors
// become InternalError; 5xx responses never carry details.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	appErr := classify(err)
	m.logError(c, err, appErr)

	details := appErr.Details()
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		details = nil
	}

	var renderErr error
	if c.Request().Method == http.MethodHead {
		renderErr = c.NoContent(appErr.HTTPCode())
	} else {
		renderErr = response.Error(c, appErr.HTTPCode(), appErr.Message(), details)
	}
	if renderErr != nil {
		m.logger.Error("Failed to render error response", slog.Any("error", renderErr))
	}
}

func classify(err error) domainerrors.AppError {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	// Router misses, body limits and bind failures surface as echo.HTTPError.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}

		return domainerrors.New(httpErr.Code, message, nil)
	}

	return domainerrors.ErrInternal.WithCause(err)
}

func (m *ErrorMiddleware) logError(c echo.Context, err error, appErr domainerrors.AppError) {
	req := c.Request()
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	attrs := []any{
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
		slog.Int("status", appErr.HTTPCode()),
		slog.String("code", appErr.ErrorCode()),
	}

	switch appErr.Kind() {
	case domainerrors.KindInternal:
		logger.Error("Request failed", append(attrs, slog.String("error", errors.Verbose(err)))...)
	case domainerrors.KindAuthentication:
		logger.Warn("Request rejected", append(attrs, slog.String("error", err.Error()))...)
	default:
		logger.Info("Request rejected", append(attrs, slog.String("error", err.Error()))...)
	}
}
