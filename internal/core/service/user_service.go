package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Harshan-mv/wechat/internal/core/domain"
	"github.com/Harshan-mv/wechat/internal/core/ports"
)

// UserService implements listings and the admin verification workflow.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) ListVerified(ctx context.Context, requester string) ([]*domain.User, error) {
	return s.repo.FindVerifiedExcept(ctx, requester)
}

func (s *UserService) ListAll(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

// SetVerified looks up the target, applies the action, and writes the
// document back. Unrecognized actions leave the record untouched but are
// still persisted, matching the panel's silent acceptance of unknown input.
func (s *UserService) SetVerified(ctx context.Context, username string, action domain.VerifyAction) error {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	switch action {
	case domain.ActionVerify:
		user.IsVerified = true
	case domain.ActionUnverify:
		user.IsVerified = false
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info().
		Str("username", username).
		Str("action", string(action)).
		Bool("is_verified", user.IsVerified).
		Msg("verification updated")
	return nil
}
