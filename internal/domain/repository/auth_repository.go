// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"userapi/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no credential is stored for an email.
// The login flow depends on it to tell "unknown user" apart from a store failure.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository is the credential store consumed by the login flow.
type CredentialRepository interface {
	// FindCredentialByEmail returns the credential stored for the exact email,
	// or ErrCredentialNotFound.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)
}
