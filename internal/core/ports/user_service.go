package ports

import (
	"context"

	"github.com/Harshan-mv/wechat/internal/core/domain"
)

// UserService covers user listings and the admin verification workflow.
type UserService interface {
	// ListVerified returns all verified users except the requester.
	ListVerified(ctx context.Context, requester string) ([]*domain.User, error)
	// ListAll returns every user record, unfiltered, for the admin panel.
	ListAll(ctx context.Context) ([]*domain.User, error)
	// SetVerified applies a verify/unverify action to the named user. An
	// unrecognized action is a no-op that is still persisted. Returns
	// domain.ErrUserNotFound when no such user exists.
	SetVerified(ctx context.Context, username string, action domain.VerifyAction) error
}
