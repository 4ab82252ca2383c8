package ports

import (
	"context"

	"github.com/Harshan-mv/wechat/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindVerifiedExcept returns all verified users whose username differs
	// from the given one, in the store's natural order.
	FindVerifiedExcept(ctx context.Context, username string) ([]*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// Save persists the full user document keyed by username, whether or not
	// any field changed.
	Save(ctx context.Context, user *domain.User) error
}
