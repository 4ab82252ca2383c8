package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Harshan-mv/wechat/internal/core/domain"
	"github.com/Harshan-mv/wechat/internal/core/ports"
)

type stubMessageRepo struct {
	messages []*domain.Message
}

func (r *stubMessageRepo) Insert(_ context.Context, msg *domain.Message) error {
	clone := *msg
	r.messages = append(r.messages, &clone)
	return nil
}

func (r *stubMessageRepo) FindBetween(_ context.Context, userA, userB string) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range r.messages {
		if (m.Sender == userA && m.Receiver == userB) || (m.Sender == userB && m.Receiver == userA) {
			clone := *m
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func TestMessageService_Send_AssignsTimestamp(t *testing.T) {
	repo := &stubMessageRepo{}
	svc := NewMessageService(repo, zerolog.Nop())

	before := time.Now().UTC()
	msg, err := svc.Send(context.Background(), ports.SendMessageInput{
		Sender:      "alice",
		Receiver:    "bob",
		Body:        "hi",
		SessionUser: "alice",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if msg.Timestamp.Before(before) {
		t.Fatalf("timestamp must be server-assigned at write time")
	}
	if len(repo.messages) != 1 {
		t.Fatalf("expected one persisted message, got %d", len(repo.messages))
	}
}

// The declared sender is stored even when it does not match the session
// identity; the gap is logged, not rejected.
func TestMessageService_Send_KeepsDeclaredSender(t *testing.T) {
	repo := &stubMessageRepo{}
	svc := NewMessageService(repo, zerolog.Nop())

	msg, err := svc.Send(context.Background(), ports.SendMessageInput{
		Sender:      "mallory",
		Receiver:    "bob",
		Body:        "hello",
		SessionUser: "alice",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if msg.Sender != "mallory" {
		t.Fatalf("declared sender must be persisted as-is, got %q", msg.Sender)
	}
}

func TestMessageService_Conversation_SymmetricAndOrdered(t *testing.T) {
	repo := &stubMessageRepo{}
	svc := NewMessageService(repo, zerolog.Nop())

	for i, pair := range [][2]string{{"x", "y"}, {"y", "x"}, {"x", "y"}, {"x", "z"}} {
		repo.messages = append(repo.messages, &domain.Message{
			Sender:    pair[0],
			Receiver:  pair[1],
			Body:      "m",
			Timestamp: time.Unix(int64(100+i), 0),
		})
	}

	asX, err := svc.Conversation(context.Background(), "x", "y")
	if err != nil {
		t.Fatalf("Conversation returned error: %v", err)
	}
	asY, err := svc.Conversation(context.Background(), "y", "x")
	if err != nil {
		t.Fatalf("Conversation returned error: %v", err)
	}

	if len(asX) != 3 || len(asY) != 3 {
		t.Fatalf("expected 3 messages each way, got %d and %d", len(asX), len(asY))
	}
	for i := range asX {
		if !asX[i].Timestamp.Equal(asY[i].Timestamp) {
			t.Fatalf("both directions must return the same ordered set")
		}
		if i > 0 && asX[i].Timestamp.Before(asX[i-1].Timestamp) {
			t.Fatalf("messages must be ascending by timestamp")
		}
	}
}
