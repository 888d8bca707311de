package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-workforce/internal/messaging/kafka"
	kafkaMock "go-workforce/internal/messaging/kafka/mock"
	"go-workforce/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failOn map[string]error
	got    []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err, ok := w.failOn[string(m.Key)]; ok {
			return err
		}
		w.got = append(w.got, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		events := []kafka.OutboxEvent{
			{ID: "a", RequestID: "req-1", AggregateType: "employee", AggregateID: "1", EventType: "employee_created", Topic: "t", Payload: []byte(`{}`)},
			{ID: "b", AggregateType: "employee", AggregateID: "2", EventType: "employee_deleted", Topic: "t", Payload: []byte(`{}`)},
		}
		repo.EXPECT().ListPending(ctx, 50).Return(events, nil)
		repo.EXPECT().MarkSent(ctx, "a").Return(nil)
		repo.EXPECT().MarkSent(ctx, "b").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Len(t, writer.got, 2)
		assert.Equal(t, []byte("1"), writer.got[0].Key)
		assert.Len(t, writer.got[0].Headers, 3)
		assert.Len(t, writer.got[1].Headers, 2)
	})

	t.Run("publish failure marks failed and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failOn: map[string]error{"1": errors.New("broker unavailable")}}

		events := []kafka.OutboxEvent{
			{ID: "a", AggregateID: "1", Topic: "t", Payload: []byte(`{}`), RetryCount: 2},
			{ID: "b", AggregateID: "2", Topic: "t", Payload: []byte(`{}`)},
		}
		repo.EXPECT().ListPending(ctx, 50).Return(events, nil)
		repo.EXPECT().MarkFailed(ctx, events[0], "broker unavailable").Return(nil)
		repo.EXPECT().MarkSent(ctx, "b").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		sent, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

		assert.EqualError(t, err, "db down")
		assert.Zero(t, sent)
	})

	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{}, nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

		assert.NoError(t, err)
		assert.Zero(t, sent)
	})
}
