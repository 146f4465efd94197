// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account record managed through the users resource.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name         string    // The user's display name.
	Email        string    // Login identifier; unique and compared case-sensitively.
	PasswordHash string    // bcrypt hash of the user's password. Never serialised to clients.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Credential returns the login view of the user.
func (u *User) Credential() *Credential {
	return &Credential{
		UserID:       u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
}
