// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"strconv"

	"userapi/config"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/service"
	"userapi/internal/errors"
	"userapi/internal/infra/workerpool"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the cost the service has always issued hashes with.
const DefaultBcryptCost = 10

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// Hashing and comparison run on the shared worker pool.
type bcryptHasher struct {
	cost int
	pool *workerpool.Pool
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config, pool *workerpool.Pool) service.PasswordHasher {
	cost := DefaultBcryptCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost, pool)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost. Out-of-range
// costs are clamped to bcrypt's bounds.
func NewBcryptHasherWithCost(cost int, pool *workerpool.Pool) service.PasswordHasher {
	cost = min(max(cost, bcrypt.MinCost), bcrypt.MaxCost)
	if pool == nil {
		pool = workerpool.New(0)
	}

	return &bcryptHasher{cost: cost, pool: pool}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	var hashed []byte
	err := h.pool.Do(ctx, func() error {
		var genErr error
		hashed, genErr = bcrypt.GenerateFromPassword([]byte(password), h.cost)

		return genErr
	})
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domainerrors.ErrValidationFailed.WithDetails(map[string]any{
			"password": "must be at most " + strconv.Itoa(MaxPasswordBytes) + " bytes",
		})
	}
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WithCause(errors.Wrap(err, "bcrypt hash"))
	}

	return string(hashed), nil
}

// Verify compares a plaintext password with a bcrypt hash in constant time.
func (h *bcryptHasher) Verify(ctx context.Context, password, hash string) (bool, error) {
	var cmpErr error
	if err := h.pool.Do(ctx, func() error {
		cmpErr = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

		return nil
	}); err != nil {
		return false, domainerrors.ErrPasswordHashFailed.WithCause(err)
	}

	switch {
	case cmpErr == nil:
		return true, nil
	case errors.Is(cmpErr, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		// Malformed or unsupported stored hash.
		return false, domainerrors.ErrPasswordHashFailed.WithCause(errors.Wrap(cmpErr, "bcrypt compare"))
	}
}
