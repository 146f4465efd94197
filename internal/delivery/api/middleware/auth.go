// Package middleware holds the API-specific echo middlewares.
package middleware

import (
	"userapi/config"
	deliverycontext "userapi/internal/delivery/context"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// HeaderAuthorization carries the raw session token. No scheme prefix is expected.
const HeaderAuthorization = echo.HeaderAuthorization

// AuthMiddleware verifies session tokens on protected routes.
type AuthMiddleware struct {
	codec  service.TokenCodec
	secret []byte
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(codec service.TokenCodec, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		codec:  codec,
		secret: []byte(cfg.SecretKey.Access),
	}
}

// Authenticate rejects requests without a valid, unexpired token with 403 and
// otherwise attaches the decoded claims as the request's AuthContext.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(HeaderAuthorization)
		if token == "" {
			return domainerrors.ErrTokenNotProvided
		}

		claims, err := m.codec.Decode(token, m.secret)
		if err != nil {
			// Expired and forged tokens look the same to the client.
			return domainerrors.ErrInvalidToken.WithCause(err)
		}

		deliverycontext.SetAuthContext(c, &deliverycontext.AuthContext{Claims: *claims})

		return next(c)
	}
}

// GetAuthContext returns the identity attached by Authenticate.
func GetAuthContext(c echo.Context) (*deliverycontext.AuthContext, bool) {
	return deliverycontext.GetAuthContext(c)
}
