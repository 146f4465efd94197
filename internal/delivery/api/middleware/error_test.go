package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "userapi/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func handleWith(t *testing.T, method string, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := echo.New()
	req := httptest.NewRequest(method, "/anything", nil)
	rec := httptest.NewRecorder()
	NewErrorMiddleware(logger).HandleHTTPError(err, e.NewContext(req, rec))

	return rec, logs.String()
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
		wantLog  string
	}{
		{
			name:     "client error with details",
			err:      domainerrors.ErrValidationFailed.WithDetails(map[string]any{"email": "is required"}),
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"Validation failed","details":{"email":"is required"}}`,
			wantLog:  "level=INFO",
		},
		{
			name:     "wrapped not found",
			err:      errors.Wrap(domainerrors.ErrUserNotFound, "login"),
			wantCode: http.StatusNotFound,
			wantBody: `{"message":"User not found","details":{}}`,
			wantLog:  "level=INFO",
		},
		{
			name:     "authentication failure",
			err:      domainerrors.ErrIncorrectPassword,
			wantCode: http.StatusUnauthorized,
			wantBody: `{"message":"Incorrect password","details":{}}`,
			wantLog:  "level=WARN",
		},
		{
			name:     "server error hides cause and details",
			err:      domainerrors.ErrVerifyingUser.WithCause(errors.New("dial tcp: connection refused")),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Error verifying user","details":{}}`,
			wantLog:  "connection refused",
		},
		{
			name:     "custom app error keeps its status",
			err:      domainerrors.New(http.StatusTeapot, "short and stout", map[string]any{"spout": true}),
			wantCode: http.StatusTeapot,
			wantBody: `{"message":"short and stout","details":{"spout":true}}`,
		},
		{
			name:     "echo http error",
			err:      echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantCode: http.StatusRequestEntityTooLarge,
			wantBody: `{"message":"Request Entity Too Large","details":{}}`,
		},
		{
			name:     "unclassified error",
			err:      errors.New("nil pointer somewhere"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Internal Server Error","details":{}}`,
			wantLog:  "level=ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, logs := handleWith(t, http.MethodGet, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			if tt.wantLog != "" {
				assert.Contains(t, logs, tt.wantLog)
			}
		})
	}
}

func TestHandleHTTPError_Head(t *testing.T) {
	rec, _ := handleWith(t, http.MethodHead, domainerrors.ErrUserNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDefaultAppError(t *testing.T) {
	rec, _ := handleWith(t, http.MethodGet, domainerrors.New(0, "", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error","details":{}}`, rec.Body.String())
}
