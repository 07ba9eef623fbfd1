package employee

import (
	"context"
	"encoding/json"
	"strings"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
)

type EventPublisher interface {
	PublishEmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error
	PublishEmployeesImported(ctx context.Context, event events.EmployeesImportedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishEmployeeCreated(context.Context, events.EmployeeCreatedEvent) error {
	return nil
}

func (noopEventPublisher) PublishEmployeesImported(context.Context, events.EmployeesImportedEvent) error {
	return nil
}

// outboxEventPublisher queues events; the producer worker ships them to kafka.
type outboxEventPublisher struct {
	outbox kafka.OutboxRepository
}

func NewOutboxEventPublisher(outbox kafka.OutboxRepository) EventPublisher {
	if outbox == nil {
		return noopEventPublisher{}
	}
	return &outboxEventPublisher{outbox: outbox}
}

func (p *outboxEventPublisher) PublishEmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error {
	return p.enqueue(ctx, event.EmployeeID, event.EventType, event)
}

func (p *outboxEventPublisher) PublishEmployeesImported(ctx context.Context, event events.EmployeesImportedEvent) error {
	return p.enqueue(ctx, strings.Join(event.EmployeeIDs, ","), event.EventType, event)
}

func (p *outboxEventPublisher) enqueue(ctx context.Context, aggregateID, eventType string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee",
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
