package messaging

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/PloomFi/PloomFi/pkg/events"
)

// LogPublisher implements port.EventPublisher by writing each event as a
// structured log record on a dedicated topic.
type LogPublisher struct {
	logger *slog.Logger
	topic  string
}

// NewLogPublisher creates a publisher that logs events under topic.
func NewLogPublisher(logger *slog.Logger, topic string) *LogPublisher {
	return &LogPublisher{logger: logger, topic: topic}
}

// Publish logs every event. It only fails if the context is already done.
func (p *LogPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	for _, evt := range evts {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.logger.InfoContext(ctx, "domain event published",
			slog.String("topic", p.topic),
			slog.String("event_id", evt.EventID().String()),
			slog.String("event_type", evt.EventType()),
			slog.String("aggregate_type", evt.AggregateType()),
			slog.String("aggregate_id", evt.AggregateID().String()),
			slog.String("subject", evt.Subject()),
			slog.Time("occurred_at", evt.OccurredAt()),
			slog.Any("payload", json.RawMessage(evt.Payload())),
		)
	}
	return nil
}
