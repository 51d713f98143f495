package middleware

import (
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "auth-token"

// sessionContextKey stores resolved claims on the echo context.
const sessionContextKey = "session"

// SessionMiddleware resolves the caller's identity from the session cookie.
type SessionMiddleware struct {
	tokens service.TokenService
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(tokens service.TokenService) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

// Resolve returns the verified identity from the request's cookie store, or
// nothing. An absent cookie short-circuits without touching the token
// service; a present one is worth exactly what verification says, no more.
func (m *SessionMiddleware) Resolve(c echo.Context) (*entity.SessionClaims, bool) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	return m.tokens.Verify(cookie.Value)
}

// RequireSession guards mutation endpoints: no verified session means 401
// before any handler logic runs. The resolved claims are stored on the
// context for the handler.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := m.Resolve(c)
		if !ok {
			return domainerrors.ErrUnauthorized
		}

		c.Set(sessionContextKey, claims)

		return next(c)
	}
}

// SessionFromContext returns the claims stored by RequireSession.
func SessionFromContext(c echo.Context) (*entity.SessionClaims, bool) {
	claims, ok := c.Get(sessionContextKey).(*entity.SessionClaims)

	return claims, ok
}
