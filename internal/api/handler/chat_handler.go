package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/Harshan-mv/wechat/internal/api/metrics"
	apimiddleware "github.com/Harshan-mv/wechat/internal/api/middleware"
	"github.com/Harshan-mv/wechat/internal/core/ports"
)

// ChatHandler serves the user list, conversation view, and message sends.
// All routes require an authenticated session.
type ChatHandler struct {
	users    ports.UserService
	messages ports.MessageService
}

func NewChatHandler(users ports.UserService, messages ports.MessageService) *ChatHandler {
	return &ChatHandler{users: users, messages: messages}
}

// Users handles GET /users and lists every verified user except the requester.
func (h *ChatHandler) Users(c echo.Context) error {
	sess := apimiddleware.CurrentSession(c)

	users, err := h.users.ListVerified(c.Request().Context(), sess.User.Username)
	if err != nil {
		return err
	}
	return render(c, "users", usersView{Users: users})
}

// Chat handles GET /chat?username=<target> and renders the two-way thread
// between the requester and the target in ascending timestamp order.
func (h *ChatHandler) Chat(c echo.Context) error {
	sess := apimiddleware.CurrentSession(c)
	target := c.QueryParam("username")

	msgs, err := h.messages.Conversation(c.Request().Context(), sess.User.Username, target)
	if err != nil {
		return err
	}
	return render(c, "chat", chatView{
		CurrentUser: sess.User.Username,
		Target:      target,
		Messages:    msgs,
	})
}

// Send handles POST /send. Sender and receiver come from the form body; the
// session identity is passed along for audit logging only.
func (h *ChatHandler) Send(c echo.Context) error {
	var form sendMessageForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	if err := c.Validate(&form); err != nil {
		return err
	}

	sess := apimiddleware.CurrentSession(c)
	_, err := h.messages.Send(c.Request().Context(), ports.SendMessageInput{
		Sender:      form.Sender,
		Receiver:    form.Receiver,
		Body:        form.Message,
		SessionUser: sess.User.Username,
	})
	if err != nil {
		return err
	}

	metrics.MessagesSentTotal.Inc()
	return c.Redirect(http.StatusFound, "/chat?username="+url.QueryEscape(form.Receiver))
}
