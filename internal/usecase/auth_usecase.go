package usecase

import "context"

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	Token string `json:"token"`
}

// AuthUsecase defines the login operation.
type AuthUsecase interface {
	// Login verifies the credentials and issues a session token. Failures are
	// classified as not-found, authentication or internal errors and never conflated.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
