package auth

import (
	"time"

	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/service"
	"userapi/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtCodec is a concrete implementation of the TokenCodec interface using HS256 JWTs.
type jwtCodec struct {
	now func() time.Time
}

// NewJWTCodec is the constructor for jwtCodec.
func NewJWTCodec() service.TokenCodec {
	return &jwtCodec{now: time.Now}
}

// Encode signs claims with secret after stamping issued-at and expiry.
func (c *jwtCodec) Encode(claims service.Claims, secret []byte, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", domainerrors.ErrTokenSigningFailed.WithCause(errors.New("empty signing secret"))
	}

	issuedAt := c.now()
	claims.IssuedAt = jwt.NewNumericDate(issuedAt)
	claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", domainerrors.ErrTokenSigningFailed.WithCause(errors.Wrap(err, "sign token"))
	}

	return signed, nil
}

// Decode verifies the signature and expiry of token and returns its claims.
// iat is informational: an issuer clock running ahead of ours must not reject a
// fresh token, and no leeway is applied to exp.
func (c *jwtCodec) Decode(tokenString string, secret []byte) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		// The signature is checked before any claim, so a forged token never reports "expired".
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WithCause(err)
		}

		return nil, domainerrors.ErrInvalidToken.WithCause(err)
	}

	return claims, nil
}
