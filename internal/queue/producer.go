package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type EventMessage struct {
	EventType     EventType
	CompanyID     int64
	ApplicationID *int64
	TraceID       *string
	Attempt       int
}

type Producer interface {
	Enqueue(ctx context.Context, msg EventMessage) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, msg EventMessage) error {
	attempt := msg.Attempt
	if attempt <= 0 {
		attempt = 1
	}

	fields := map[string]any{
		"event_type": string(msg.EventType),
		"company_id": msg.CompanyID,
		"attempt":    attempt,
	}
	if msg.ApplicationID != nil {
		fields["application_id"] = *msg.ApplicationID
	}
	if msg.TraceID != nil && *msg.TraceID != "" {
		fields["trace_id"] = *msg.TraceID
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue event: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued event",
		"event_type", msg.EventType,
		"company_id", msg.CompanyID,
		"attempt", attempt)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}

// NoopProducer drops events. Used when no Redis is configured.
type NoopProducer struct{}

func (NoopProducer) Enqueue(ctx context.Context, msg EventMessage) error {
	slog.DebugContext(ctx, "event dropped, no queue configured", "event_type", msg.EventType)
	return nil
}

func (NoopProducer) Close() error { return nil }
