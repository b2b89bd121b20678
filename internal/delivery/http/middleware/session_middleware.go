package middleware

import (
	"strings"

	"libris/config"
	deliverycontext "libris/internal/delivery/context"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware restores the authenticated principal from the session
// token. Restoration is purely cryptographic: the codec verifies the token's
// signature and expiry and never consults the store.
type SessionMiddleware struct {
	codec      service.SessionCodec
	cookieName string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(codec service.SessionCodec, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		codec:      codec,
		cookieName: cfg.Session.CookieName,
	}
}

// token extracts the session token from the cookie, or from a Bearer
// Authorization header for non-browser clients.
func (m *SessionMiddleware) token(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	return ""
}

// Authenticate requires a valid session and stores its principal on the
// request context for handlers to use.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.token(c)
		if token == "" {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "no session token")
		}

		principal, err := m.codec.Decode(token)
		if err != nil {
			return errors.Wrap(domainerrors.ErrSessionInvalid, "session token rejected")
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// RequireAdmin rejects non-administrator principals.
// It must be used AFTER the Authenticate middleware.
func (m *SessionMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal := deliverycontext.GetPrincipal(c)
		if principal == nil {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "no principal on request")
		}
		if !principal.IsAdmin {
			return errors.Wrap(domainerrors.ErrForbidden, "administrator access required")
		}

		return next(c)
	}
}
