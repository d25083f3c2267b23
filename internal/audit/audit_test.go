package audit_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ssms/internal/audit"
	"ssms/internal/messaging/kafka"
	kafkaMock "ssms/internal/messaging/kafka/mock"
	"ssms/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestOutboxLogger_Log(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-42")

	t.Run("queues entry as pending outbox event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, "ssms.audit.v1", e.Topic)
				assert.Equal(t, audit.ActionContractCreated, e.EventType)
				assert.Equal(t, "T1", e.AggregateID)
				assert.Equal(t, "req-42", e.RequestID)
				assert.Equal(t, kafka.OutboxStatusPending, e.Status)

				var entry audit.Entry
				assert.NoError(t, json.Unmarshal(e.Payload, &entry))
				assert.Equal(t, "u1", entry.ActorID)
				assert.False(t, entry.OccurredAt.IsZero())
				return nil
			})

		l := audit.NewOutboxLogger(repo, "ssms.audit.v1", zap.NewNop())
		l.Log(ctx, audit.Entry{Action: audit.ActionContractCreated, TenantID: "T1", ActorID: "u1"})
	})

	t.Run("write failure is logged and swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		core, logs := observer.New(zap.WarnLevel)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		l := audit.NewOutboxLogger(repo, "ssms.audit.v1", zap.New(core))
		assert.NotPanics(t, func() {
			l.Log(ctx, audit.Entry{Action: audit.ActionUsageDeleted, TenantID: "T1"})
		})
		assert.Equal(t, 1, logs.FilterMessage("audit outbox write failed, entry dropped").Len())
	})
}

type recordingLogger struct {
	entries []audit.Entry
}

func (r *recordingLogger) Log(_ context.Context, e audit.Entry) {
	r.entries = append(r.entries, e)
}

func TestMulti(t *testing.T) {
	a, b := &recordingLogger{}, &recordingLogger{}
	audit.Multi(a, audit.Nop(), b).Log(context.Background(), audit.Entry{Action: audit.ActionUsageSaved})

	assert.Len(t, a.entries, 1)
	assert.Len(t, b.entries, 1)
}

func TestStdoutLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit.NewStdoutLogger(zap.New(core)).Log(
		contextutil.WithTenantID(context.Background(), "T9"),
		audit.Entry{Action: audit.ActionServerShutdown, Message: "bye"},
	)

	entries := logs.FilterMessage("audit event").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "T9", entries[0].ContextMap()["tenant_id"])
}
