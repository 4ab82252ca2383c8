package ports

import (
	"context"

	"github.com/Harshan-mv/wechat/internal/core/domain"
)

// MessageRepository defines persistence operations for direct messages.
type MessageRepository interface {
	Insert(ctx context.Context, msg *domain.Message) error
	// FindBetween returns every message exchanged between the two usernames,
	// in either direction, ordered ascending by timestamp.
	FindBetween(ctx context.Context, userA, userB string) ([]*domain.Message, error)
}
