package auth

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	autherrors "go-hrms/internal/auth/errors"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type SessionStore interface {
	Save(ctx context.Context, s Session) error
	// Get returns autherrors.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]Session), now: time.Now}
}

func (m *memorySessionStore) Save(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[SessionKey(s.ID)] = s
	return nil
}

func (m *memorySessionStore) Get(_ context.Context, sessionID string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[SessionKey(sessionID)]
	m.mu.RUnlock()
	if !ok {
		return nil, autherrors.ErrSessionNotFound
	}
	if !s.ExpiresAt.IsZero() && !m.now().Before(s.ExpiresAt) {
		m.mu.Lock()
		delete(m.sessions, SessionKey(sessionID))
		m.mu.Unlock()
		return nil, autherrors.ErrSessionNotFound
	}
	return &s, nil
}

func (m *memorySessionStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, SessionKey(sessionID))
	return nil
}

type redisSessionStore struct {
	rdb *redis.Client
}

// NewRedisSessionStore keeps sessions as JSON strings that expire with
// the session.
func NewRedisSessionStore(rdb *redis.Client) SessionStore {
	return &redisSessionStore{rdb: rdb}
}

func (r *redisSessionStore) Save(ctx context.Context, s Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	ttl := time.Until(s.ExpiresAt)
	if s.ExpiresAt.IsZero() {
		ttl = 0
	}
	return r.rdb.Set(ctx, SessionKey(s.ID), payload, ttl).Err()
}

func (r *redisSessionStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	raw, err := r.rdb.Get(ctx, SessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, autherrors.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, SessionKey(sessionID)).Err()
}
