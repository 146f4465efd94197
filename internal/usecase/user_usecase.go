// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"userapi/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a user.
type CreateUserInput struct {
	Name     string `json:"name" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

// UpdateUserInput replaces every mutable field of a user.
type UpdateUserInput struct {
	ID       uuid.UUID `json:"-"`
	Name     string    `json:"name" validate:"required,min=3,max=30"`
	Email    string    `json:"email" validate:"required,email"`
	Password string    `json:"password" validate:"required,min=6,maxbytes=72"`
}

// --- Output DTOs ---

// UserOutput is the client-facing view of a user. It never carries the password hash.
type UserOutput struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// NewUserOutput maps an entity to its public view.
func NewUserOutput(user *entity.User) *UserOutput {
	return &UserOutput{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// UserUsecase defines the interface for the users resource.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*UserOutput, error)
	GetUser(ctx context.Context, id uuid.UUID) (*UserOutput, error)
	ListUsers(ctx context.Context) ([]*UserOutput, error)
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*UserOutput, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
