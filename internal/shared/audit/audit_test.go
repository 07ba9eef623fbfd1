package audit_test

import (
	"context"
	"testing"

	"go-hrms/internal/shared/audit"
	"go-hrms/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := audit.NewZapLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "req-9")
	ctx = contextutil.WithUserID(ctx, "2")
	l.Log(ctx, audit.Entry{Action: "EMPLOYEES_IMPORTED", Message: "2 employees imported", Meta: map[string]any{"count": 2}})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	fields := entry.ContextMap()
	assert.Equal(t, "EMPLOYEES_IMPORTED", fields["action"])
	assert.Equal(t, "req-9", fields["request_id"])
	assert.Equal(t, "2", fields["user_id"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { audit.Nop().Log(context.Background(), audit.Entry{}) })
}
