package context

import (
	"context"

	"userapi/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyAuthContext stores the verified token claims of the current request.
const KeyAuthContext ContextKey = "auth_context"

// AuthContext is the identity proven by the request's token. It lives for one
// request and is never persisted.
type AuthContext struct {
	Claims service.Claims
}

// UserID returns the token subject.
func (a *AuthContext) UserID() string {
	return a.Claims.Subject
}

// SetAuthContext attaches the identity to both the echo context and the request context.
func SetAuthContext(c echo.Context, auth *AuthContext) {
	c.Set(string(KeyAuthContext), auth)
	c.SetRequest(c.Request().WithContext(WithAuthContext(c.Request().Context(), auth)))
}

// GetAuthContext returns the identity attached by the authentication middleware.
func GetAuthContext(c echo.Context) (*AuthContext, bool) {
	auth, ok := c.Get(string(KeyAuthContext)).(*AuthContext)

	return auth, ok && auth != nil
}

// WithAuthContext returns a new context carrying the identity.
func WithAuthContext(ctx context.Context, auth *AuthContext) context.Context {
	return context.WithValue(ctx, KeyAuthContext, auth)
}

// AuthContextFrom extracts the identity from a standard context.Context.
func AuthContextFrom(ctx context.Context) (*AuthContext, bool) {
	auth, ok := ctx.Value(KeyAuthContext).(*AuthContext)

	return auth, ok && auth != nil
}
