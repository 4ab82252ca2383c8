package ports

import (
	"context"

	"github.com/Harshan-mv/wechat/internal/core/domain"
)

// SessionStore holds server-side session state keyed by an opaque id. The
// cookie carries only the id; the user snapshot never leaves the store.
// Implementations expire sessions after their configured TTL.
type SessionStore interface {
	// Create stores a new session holding a snapshot of user and returns it.
	Create(ctx context.Context, user domain.User) (*domain.Session, error)
	// Get returns the session for id, or domain.ErrSessionNotFound when the
	// session does not exist or has expired.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Delete removes the session. Deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error
	// Close releases the store's resources.
	Close() error
}
