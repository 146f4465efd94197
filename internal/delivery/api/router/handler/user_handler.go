package handler

import (
	"net/http"

	"userapi/internal/delivery/api/response"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/errors"
	"userapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for the users resource.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c echo.Context) error {
	input := new(usecase.CreateUserInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.CreateUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	outputs, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs)
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// UpdateUser handles PUT /users/:id.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateUserInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}
	input.ID = id

	output, err := h.uc.UpdateUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// DeleteUser handles DELETE /users/:id.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "User deleted")
}

// userIDParam parses the :id path segment. Ids that are not UUIDs cannot exist,
// so they report the same 404 as a missing user.
func userIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrUserNotFound
	}

	return id, nil
}

func bindAndValidate(c echo.Context, input any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, input); err != nil {
		return domainerrors.ErrValidationFailed.WithCause(err)
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
