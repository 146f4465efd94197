package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity assertions carried by a session token.
// Subject and Email are set by the issuer; IssuedAt and ExpiresAt are stamped at encode time.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewClaims returns claims for the given subject and email, ready to be encoded.
func NewClaims(subject, email string) Claims {
	return Claims{
		Email:            email,
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}
}

// IssuedTime returns the issued-at instant, or the zero time when absent.
func (c *Claims) IssuedTime() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}

	return c.IssuedAt.Time
}

// ExpiryTime returns the expiry instant, or the zero time when absent.
func (c *Claims) ExpiryTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}

	return c.ExpiresAt.Time
}

// TokenCodec encodes claims into signed, expiring tokens and decodes them back.
// It keeps no state; the signing secret is passed on every call.
type TokenCodec interface {
	// Encode stamps IssuedAt=now and ExpiresAt=now+ttl on claims and signs them with secret.
	Encode(claims Claims, secret []byte, ttl time.Duration) (string, error)

	// Decode verifies the signature with secret and the expiry against the current time.
	Decode(token string, secret []byte) (*Claims, error)
}
