package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingEvent(id string) OutboxEvent {
	return OutboxEvent{
		ID:          id,
		AggregateID: "emp-" + id,
		EventType:   "employee_created",
		Topic:       "hrms.employee.lifecycle",
		Payload:     []byte(`{}`),
	}
}

func TestOutbox_CreateAndListPending(t *testing.T) {
	ctx := context.Background()
	repo := NewOutboxRepository()

	require.NoError(t, repo.Create(ctx, pendingEvent("1")))
	require.NoError(t, repo.Create(ctx, pendingEvent("2")))
	assert.Error(t, repo.Create(ctx, pendingEvent("1")), "duplicate id")

	events, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "1", events[0].ID)
	assert.Equal(t, OutboxStatusPending, events[0].Status)

	limited, err := repo.ListPending(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestOutbox_Validation(t *testing.T) {
	repo := NewOutboxRepository()
	ev := pendingEvent("1")
	ev.Topic = ""
	assert.EqualError(t, repo.Create(context.Background(), ev), "outbox topic is required")

	ev = pendingEvent("2")
	ev.Status = "weird"
	assert.EqualError(t, repo.Create(context.Background(), ev), "invalid outbox status: weird")
}

func TestOutbox_MarkSentAndFailed(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	repo := newMemoryOutbox(func() time.Time { return now })

	require.NoError(t, repo.Create(ctx, pendingEvent("1")))
	require.NoError(t, repo.Create(ctx, pendingEvent("2")))

	require.NoError(t, repo.MarkSent(ctx, "1"))
	require.NoError(t, repo.MarkFailed(ctx, "2", "broker down"))

	events, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, events, "failed event waits for its retry time")

	now = now.Add(16 * time.Second)
	events, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "2", events[0].ID)
	assert.Equal(t, 1, events[0].RetryCount)
	assert.Equal(t, "broker down", events[0].ErrorMessage)

	assert.Error(t, repo.MarkSent(ctx, "missing"))
}
