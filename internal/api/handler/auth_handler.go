package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Harshan-mv/wechat/internal/api/metrics"
	"github.com/Harshan-mv/wechat/internal/core/domain"
	"github.com/Harshan-mv/wechat/internal/core/ports"
	"github.com/Harshan-mv/wechat/internal/infrastructure/session"
	apimiddleware "github.com/Harshan-mv/wechat/internal/api/middleware"
)

// AuthHandler serves the landing/register pages and the auth form posts.
type AuthHandler struct {
	auth     ports.AuthService
	sessions ports.SessionStore
	secret   string
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionStore, secret string) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, secret: secret}
}

// Landing handles GET / and renders the login page.
func (h *AuthHandler) Landing(c echo.Context) error {
	return render(c, "login", nil)
}

// RegisterPage handles GET /register.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return render(c, "register", nil)
}

// Register handles POST /register. Any failure, including a duplicate
// username, surfaces as a generic server error; success redirects to the
// landing page.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	if err := c.Validate(&form); err != nil {
		return err
	}

	if _, err := h.auth.Register(c.Request().Context(), form.Username, form.Password); err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.Redirect(http.StatusFound, "/")
}

// Login handles POST /login. Unknown usernames and wrong passwords produce
// the identical response; a matching login creates a session and branches on
// the admin flag.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	user, err := h.auth.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			// A flat 200 page, not an auth status: the browser shows the
			// message instead of a browser-level credential prompt.
			return c.String(http.StatusOK, "Invalid credentials!")
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	sess, err := h.sessions.Create(c.Request().Context(), *user)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	token, err := session.SignToken(h.secret, sess.ID)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     apimiddleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	if user.IsAdmin {
		return c.Redirect(http.StatusFound, "/admin")
	}
	return c.Redirect(http.StatusFound, "/users")
}

// Logout handles POST /logout. Session destruction is best-effort; the
// redirect proceeds either way.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(apimiddleware.CookieName); err == nil && cookie.Value != "" {
		if sid, err := session.ParseToken(h.secret, cookie.Value); err == nil {
			_ = h.sessions.Delete(c.Request().Context(), sid)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     apimiddleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/")
}
