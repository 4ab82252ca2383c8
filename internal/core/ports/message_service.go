package ports

import (
	"context"

	"github.com/Harshan-mv/wechat/internal/core/domain"
)

// SendMessageInput carries a message send request from the transport layer.
// Sender comes from the request body; SessionUser is the authenticated
// identity and is recorded for audit only, not enforced.
type SendMessageInput struct {
	Sender      string
	Receiver    string
	Body        string
	SessionUser string
}

// MessageService covers sending and conversation retrieval.
type MessageService interface {
	Send(ctx context.Context, input SendMessageInput) (*domain.Message, error)
	// Conversation returns all messages between the two usernames in
	// ascending timestamp order. Symmetric in its arguments.
	Conversation(ctx context.Context, userA, userB string) ([]*domain.Message, error)
}
