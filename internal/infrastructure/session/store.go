// Package session provides the server-side session store behind the browser
// cookie. Two backings exist: an in-memory map for single-instance
// deployments and Redis for multi-instance ones. Both are created and torn
// down explicitly by the process entry point.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Harshan-mv/wechat/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// MemoryStore keeps sessions in a process-local map guarded by a mutex.
// Expiry is lazy: expired entries are dropped on Get and by a janitor that
// runs until Close.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	done     chan struct{}
	closed   sync.Once
}

type memoryEntry struct {
	session   domain.Session
	expiresAt time.Time
}

// NewMemoryStore creates a MemoryStore with the given TTL (defaultTTL when
// non-positive) and starts its expiry janitor.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	s := &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *MemoryStore) Create(_ context.Context, user domain.User) (*domain.Session, error) {
	sess := domain.Session{
		ID:        uuid.NewString(),
		User:      user,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = memoryEntry{session: sess, expiresAt: sess.CreatedAt.Add(s.ttl)}
	s.mu.Unlock()

	return &sess, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}

	sess := entry.session
	return &sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error {
	s.closed.Do(func() { close(s.done) })
	return nil
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, entry := range s.sessions {
				if now.After(entry.expiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
