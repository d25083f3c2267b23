// Package audit records who changed ledger data. Logging is fire-and-forget:
// no implementation returns an error and none can fail a business operation.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"ssms/internal/messaging/kafka"
	"ssms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ActionContractCreated = "OUT_CONTRACT_CREATED"
	ActionContractUpdated = "OUT_CONTRACT_UPDATED"
	ActionContractDeleted = "OUT_CONTRACT_DELETED"
	ActionUsageSaved      = "OUT_USAGE_SAVED"
	ActionUsageDeleted    = "OUT_USAGE_DELETED"
	ActionServerShutdown  = "SERVER_SHUTDOWN"
)

type Entry struct {
	Action     string         `json:"action"`
	Message    string         `json:"message"`
	TenantID   string         `json:"tenant_id,omitempty"`
	ActorID    string         `json:"actor_id,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type Logger interface {
	Log(ctx context.Context, entry Entry)
}

// complete fills the request id and timestamp from ctx when unset.
func complete(ctx context.Context, entry Entry) Entry {
	if entry.RequestID == "" {
		entry.RequestID = contextutil.GetRequestID(ctx)
	}
	if entry.TenantID == "" {
		entry.TenantID = contextutil.GetTenantID(ctx)
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}
	return entry
}

type StdoutLogger struct {
	logger *zap.Logger
}

func NewStdoutLogger(logger ...*zap.Logger) *StdoutLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &StdoutLogger{logger: l}
}

func (l *StdoutLogger) Log(ctx context.Context, entry Entry) {
	entry = complete(ctx, entry)
	l.logger.Info("audit event",
		zap.String("timestamp", entry.OccurredAt.Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.String("tenant_id", entry.TenantID),
		zap.String("actor_id", entry.ActorID),
		zap.String("request_id", entry.RequestID),
		zap.Any("meta", entry.Meta),
	)
}

// OutboxLogger queues entries in outbox_events for the Kafka relay worker.
// It writes outside the business transaction, after it committed, so a
// failed audit insert cannot roll the operation back.
type OutboxLogger struct {
	repo   kafka.OutboxRepository
	topic  string
	logger *zap.Logger
}

func NewOutboxLogger(repo kafka.OutboxRepository, topic string, logger ...*zap.Logger) *OutboxLogger {
	l := zap.L().Named("audit.outbox")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.outbox")
	}
	return &OutboxLogger{repo: repo, topic: topic, logger: l}
}

func (l *OutboxLogger) Log(ctx context.Context, entry Entry) {
	entry = complete(ctx, entry)

	payload, err := json.Marshal(entry)
	if err != nil {
		l.logger.Warn("audit marshal failed", zap.String("action", entry.Action), zap.Error(err))
		return
	}

	// The request may already be finishing; the audit row should still land.
	ctx = context.WithoutCancel(ctx)
	if err := l.repo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     entry.RequestID,
		AggregateType: "audit",
		AggregateID:   entry.TenantID,
		EventType:     entry.Action,
		Topic:         l.topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		l.logger.Warn("audit outbox write failed, entry dropped",
			zap.String("action", entry.Action),
			zap.String("request_id", entry.RequestID),
			zap.Error(err),
		)
	}
}

type multi []Logger

// Multi fans an entry out to every logger.
func Multi(loggers ...Logger) Logger {
	return multi(loggers)
}

func (m multi) Log(ctx context.Context, entry Entry) {
	for _, l := range m {
		l.Log(ctx, entry)
	}
}

type nop struct{}

func Nop() Logger { return nop{} }

func (nop) Log(context.Context, Entry) {}
