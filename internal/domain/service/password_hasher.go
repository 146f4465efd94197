// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
//
// Both operations are CPU-bound; implementations may queue them and return early
// when ctx is done while waiting.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Every call uses a fresh salt.
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is (false, nil);
	// an error means the hash itself is unusable.
	Verify(ctx context.Context, password, hash string) (bool, error)
}
