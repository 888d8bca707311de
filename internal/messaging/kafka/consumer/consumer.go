package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-workforce/internal/bootstrap"
	"go-workforce/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the slice of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		// Undecodable messages are committed so they don't block the partition.
		if err := HandleEmployeeLifecycle(ctx, msg, auditLogger); err != nil {
			log.Error("decode employee lifecycle event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}
	}
}

// HandleEmployeeLifecycle turns one lifecycle message into an audit entry.
func HandleEmployeeLifecycle(ctx context.Context, msg kafkago.Message, auditLogger bootstrap.AuditLogger) error {
	var event events.EmployeeLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return err
	}

	switch event.EventType {
	case events.EmployeeCreated, events.EmployeeUpdated, events.EmployeeDeleted:
	default:
		return fmt.Errorf("unknown employee event type: %q", event.EventType)
	}

	auditLogger.Log(ctx, bootstrap.AuditLog{
		Action:  auditAction(event.EventType),
		Message: fmt.Sprintf("employee %d %s", event.EmployeeID, auditVerb(event.EventType)),
		Meta: map[string]any{
			"employee_id": event.EmployeeID,
			"request_id":  event.RequestID,
			"occurred_at": event.OccurredAt,
		},
	})
	return nil
}

func auditAction(eventType string) string {
	switch eventType {
	case events.EmployeeCreated:
		return "EMPLOYEE_CREATED"
	case events.EmployeeUpdated:
		return "EMPLOYEE_UPDATED"
	default:
		return "EMPLOYEE_DELETED"
	}
}

func auditVerb(eventType string) string {
	switch eventType {
	case events.EmployeeCreated:
		return "created"
	case events.EmployeeUpdated:
		return "updated"
	default:
		return "deleted"
	}
}
