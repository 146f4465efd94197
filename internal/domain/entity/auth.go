package entity

import (
	"github.com/google/uuid"
)

// Credential is what the credential store hands to the login flow: an identity,
// the email it was looked up by, and the stored password hash. It is read-only
// from the authentication side.
type Credential struct {
	UserID       uuid.UUID
	Email        string
	PasswordHash string
}
