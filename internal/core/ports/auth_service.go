package ports

import (
	"context"

	"github.com/Harshan-mv/wechat/internal/core/domain"
)

// AuthService implements registration and credential checks.
type AuthService interface {
	// Register hashes the password and persists a new unverified,
	// non-admin account.
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login returns the matching user. Unknown usernames and wrong passwords
	// both yield domain.ErrInvalidCredentials so the two cases cannot be
	// told apart by a caller.
	Login(ctx context.Context, username, password string) (*domain.User, error)
}
