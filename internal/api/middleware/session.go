package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Harshan-mv/wechat/internal/core/domain"
	"github.com/Harshan-mv/wechat/internal/core/ports"
	"github.com/Harshan-mv/wechat/internal/infrastructure/session"
)

// CookieName is the browser cookie carrying the signed session id.
const CookieName = "wechat_session"

const sessionContextKey = "session"

// CurrentSession returns the session injected by RequireSession or
// RequireAdmin, or nil when neither ran.
func CurrentSession(c echo.Context) *domain.Session {
	sess, _ := c.Get(sessionContextKey).(*domain.Session)
	return sess
}

// RequireSession gates handlers behind an authenticated session. A missing,
// invalid, or expired session redirects to the landing page with no error
// surfaced.
func RequireSession(store ports.SessionStore, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := lookup(c, store, secret)
			if sess == nil {
				return c.Redirect(http.StatusFound, "/")
			}
			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// RequireAdmin gates handlers behind an admin session. Unlike RequireSession
// the failure is an explicit denial, not a silent redirect.
func RequireAdmin(store ports.SessionStore, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := lookup(c, store, secret)
			if sess == nil || !sess.User.IsAdmin {
				return c.String(http.StatusForbidden, "Access denied")
			}
			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// lookup resolves the request cookie to a server-side session. The checks
// trust the stored snapshot and never consult the user collection.
func lookup(c echo.Context, store ports.SessionStore, secret string) *domain.Session {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	sid, err := session.ParseToken(secret, cookie.Value)
	if err != nil {
		return nil
	}

	sess, err := store.Get(c.Request().Context(), sid)
	if err != nil {
		return nil
	}
	return sess
}
