// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"userapi/internal/delivery/api/middleware"
	"userapi/internal/delivery/api/response"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/service"
	"userapi/internal/errors"
	"userapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves login and the routes that demonstrate the authentication gate.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// ProfileResponse echoes the identity proven by the request's token.
type ProfileResponse struct {
	Message string          `json:"message"`
	User    *service.Claims `json:"user"`
}

// Login handles POST /login.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithCause(err)
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Profile handles GET /profile. It must run behind AuthMiddleware.Authenticate.
func (h *AuthHandler) Profile(c echo.Context) error {
	auth, ok := middleware.GetAuthContext(c)
	if !ok {
		return domainerrors.ErrTokenNotProvided
	}

	claims := auth.Claims

	return response.Success(c, http.StatusOK, ProfileResponse{
		Message: "User profile",
		User:    &claims,
	})
}

// Public handles GET /public.
func (h *AuthHandler) Public(c echo.Context) error {
	return c.String(http.StatusOK, "This is a public route.")
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
