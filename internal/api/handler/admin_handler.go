package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Harshan-mv/wechat/internal/api/metrics"
	"github.com/Harshan-mv/wechat/internal/core/domain"
	"github.com/Harshan-mv/wechat/internal/core/ports"
)

// AdminHandler serves the admin panel, the verification workflow, and the
// message audit view. All routes require an admin session.
type AdminHandler struct {
	users    ports.UserService
	messages ports.MessageService
}

func NewAdminHandler(users ports.UserService, messages ports.MessageService) *AdminHandler {
	return &AdminHandler{users: users, messages: messages}
}

// Panel handles GET /admin and lists every user record, unfiltered.
func (h *AdminHandler) Panel(c echo.Context) error {
	users, err := h.users.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return render(c, "adminPanel", usersView{Users: users})
}

// Verify handles POST /admin/verify. Unrecognized actions are accepted
// silently and still redirect; a missing target surfaces as a generic
// server error.
func (h *AdminHandler) Verify(c echo.Context) error {
	var form verifyForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	if err := c.Validate(&form); err != nil {
		return err
	}

	action := domain.VerifyAction(form.Action)
	if err := h.users.SetVerified(c.Request().Context(), form.Username, action); err != nil {
		return err
	}

	metrics.VerificationUpdatesTotal.WithLabelValues(actionLabel(action)).Inc()
	return c.Redirect(http.StatusFound, "/admin")
}

// actionLabel caps the metric label set at the two known actions plus
// "other"; the form value itself is unbounded user input.
func actionLabel(action domain.VerifyAction) string {
	switch action {
	case domain.ActionVerify, domain.ActionUnverify:
		return string(action)
	default:
		return "other"
	}
}

// Messages handles GET /admin/messages?user1=&user2=. When either parameter
// is absent the request bounces back to the panel without touching the
// store.
func (h *AdminHandler) Messages(c echo.Context) error {
	user1 := c.QueryParam("user1")
	user2 := c.QueryParam("user2")
	if user1 == "" || user2 == "" {
		return c.Redirect(http.StatusFound, "/admin")
	}

	msgs, err := h.messages.Conversation(c.Request().Context(), user1, user2)
	if err != nil {
		return err
	}
	return render(c, "adminMessages", adminMessagesView{
		User1:    user1,
		User2:    user2,
		Messages: msgs,
	})
}
