package bootstrap_test

import (
	"context"
	"testing"

	"go-workforce/internal/bootstrap"
	"go-workforce/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	auditLogger := bootstrap.NewStdoutAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "req-9")
	auditLogger.Log(ctx, bootstrap.AuditLog{
		Action:  "EMPLOYEE_DELETED",
		Message: "employee 3 deleted",
		Meta:    map[string]any{"employee_id": uint(3)},
	})

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "audit", entries[0].LoggerName)
	fields := entries[0].ContextMap()
	assert.Equal(t, "EMPLOYEE_DELETED", fields["action"])
	assert.Equal(t, "req-9", fields["request_id"])
	assert.NotEmpty(t, fields["timestamp"])
}

func TestStdoutAuditLogger_NoRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	auditLogger := bootstrap.NewStdoutAuditLogger(zap.New(core))

	auditLogger.Log(context.Background(), bootstrap.AuditLog{Action: "SERVER_SHUTDOWN"})

	_, ok := logs.All()[0].ContextMap()["request_id"]
	assert.False(t, ok)
}
