package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Harshan-mv/wechat/internal/core/domain"
	"github.com/Harshan-mv/wechat/internal/infrastructure/session"
)

const testSecret = "test-secret"

func loginAs(t *testing.T, store *session.MemoryStore, user domain.User) *http.Cookie {
	t.Helper()
	sess, err := store.Create(context.Background(), user)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	token, err := session.SignToken(testSecret, sess.ID)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return &http.Cookie{Name: CookieName, Value: token}
}

func TestRequireSession_NoCookieRedirects(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireSession(store, testSecret)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
}

func TestRequireSession_ValidSessionInjectsSnapshot(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.AddCookie(loginAs(t, store, domain.User{Username: "alice"}))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := RequireSession(store, testSecret)
	handler := mw(func(c echo.Context) error {
		called = true
		sess := CurrentSession(c)
		if sess == nil || sess.User.Username != "alice" {
			t.Fatalf("session snapshot not injected: %+v", sess)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireSession_TamperedCookieRedirects(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "forged"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireSession(store, testSecret)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}

func TestRequireAdmin_NoSessionDenied(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireAdmin(store, testSecret)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "Access denied" {
		t.Fatalf("expected denial body, got %q", body)
	}
}

func TestRequireAdmin_NonAdminDenied(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(loginAs(t, store, domain.User{Username: "alice", IsAdmin: false}))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireAdmin(store, testSecret)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAdmin_AdminPasses(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(loginAs(t, store, domain.User{Username: "root", IsAdmin: true}))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := RequireAdmin(store, testSecret)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}
