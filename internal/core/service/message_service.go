package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Harshan-mv/wechat/internal/core/domain"
	"github.com/Harshan-mv/wechat/internal/core/ports"
)

// MessageService implements sending and conversation retrieval.
type MessageService struct {
	repo   ports.MessageRepository
	logger zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, logger zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, logger: logger}
}

// Send persists a new message with a server-assigned timestamp. The declared
// sender is stored as-is; when it differs from the session identity the
// mismatch is logged so impersonation stays visible in the audit trail.
func (s *MessageService) Send(ctx context.Context, input ports.SendMessageInput) (*domain.Message, error) {
	if input.SessionUser != "" && input.Sender != input.SessionUser {
		s.logger.Warn().
			Str("declared_sender", input.Sender).
			Str("session_user", input.SessionUser).
			Msg("declared sender differs from session identity")
	}

	msg := &domain.Message{
		Sender:    input.Sender,
		Receiver:  input.Receiver,
		Body:      input.Body,
		Timestamp: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, msg); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist message")
		return nil, err
	}

	return msg, nil
}

func (s *MessageService) Conversation(ctx context.Context, userA, userB string) ([]*domain.Message, error) {
	return s.repo.FindBetween(ctx, userA, userB)
}
