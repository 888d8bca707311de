package employee

import (
	"context"
	"encoding/json"
	"strconv"

	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"

	"github.com/google/uuid"
)

//go:generate mockgen -source=employee_event_publisher.go -destination=mock/employee_event_publisher_mock.go -package=mock
type EventPublisher interface {
	PublishLifecycle(ctx context.Context, event events.EmployeeLifecycleEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishLifecycle(context.Context, events.EmployeeLifecycleEvent) error {
	return nil
}

// outboxEventPublisher stores events in outbox_events; cmd/worker ships them
// to Kafka.
type outboxEventPublisher struct {
	outbox kafka.OutboxRepository
}

func NewOutboxEventPublisher(outbox kafka.OutboxRepository) EventPublisher {
	if outbox == nil {
		return noopEventPublisher{}
	}
	return &outboxEventPublisher{outbox: outbox}
}

func (p *outboxEventPublisher) PublishLifecycle(ctx context.Context, event events.EmployeeLifecycleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "employee",
		AggregateID:   strconv.FormatUint(uint64(event.EmployeeID), 10),
		EventType:     event.EventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
