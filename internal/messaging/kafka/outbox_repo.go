package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

const maxErrorMessageLen = 500

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	ErrorMessage  string
	CreatedAt     time.Time
	NextRetryAt   time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

// memoryOutbox keeps events in insertion order. Sent events stay in the
// list so they can be inspected.
type memoryOutbox struct {
	mu     sync.Mutex
	events []OutboxEvent
	now    func() time.Time
}

func NewOutboxRepository() OutboxRepository {
	return newMemoryOutbox(time.Now)
}

func newMemoryOutbox(now func() time.Time) *memoryOutbox {
	return &memoryOutbox{now: now}
}

func (r *memoryOutbox) Create(_ context.Context, event OutboxEvent) error {
	if event.Status == "" {
		event.Status = OutboxStatusPending
	}
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.ID == event.ID {
			return fmt.Errorf("outbox event %s already exists", event.ID)
		}
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = r.now()
	}
	r.events = append(r.events, event)
	return nil
}

func (r *memoryOutbox) ListPending(_ context.Context, limit int) ([]OutboxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	out := make([]OutboxEvent, 0, limit)
	for _, e := range r.events {
		if len(out) >= limit {
			break
		}
		if e.Status != OutboxStatusPending && e.Status != OutboxStatusFailed {
			continue
		}
		if !e.NextRetryAt.IsZero() && e.NextRetryAt.After(now) {
			continue
		}
		e.Payload = append([]byte(nil), e.Payload...)
		out = append(out, e)
	}
	return out, nil
}

func (r *memoryOutbox) MarkSent(_ context.Context, id string) error {
	return r.update(id, func(e *OutboxEvent) {
		e.Status = OutboxStatusSent
		e.ErrorMessage = ""
	})
}

// MarkFailed backs off 15s per attempt, capped at 10 attempts.
func (r *memoryOutbox) MarkFailed(_ context.Context, id string, reason string) error {
	if len(reason) > maxErrorMessageLen {
		reason = reason[:maxErrorMessageLen]
	}
	return r.update(id, func(e *OutboxEvent) {
		e.Status = OutboxStatusFailed
		e.RetryCount++
		e.ErrorMessage = reason
		e.NextRetryAt = r.now().Add(time.Duration(min(e.RetryCount, 10)) * 15 * time.Second)
	})
}

func (r *memoryOutbox) update(id string, fn func(*OutboxEvent)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == id {
			fn(&r.events[i])
			return nil
		}
	}
	return fmt.Errorf("outbox event %s not found", id)
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
