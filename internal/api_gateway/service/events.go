package service

import (
	"context"
	"log/slog"

	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/shannicec/moneymorph/internal/platform/messaging/producers"
)

// eventEmitter publishes domain events after a committed change. A failed
// publish is logged and never fails the operation.
type eventEmitter struct {
	publisher producers.EventPublisher
	clock     ledger.Clock
	logger    *slog.Logger
}

func (e eventEmitter) emit(ctx context.Context, eventType shared.EventType, key string, payload any) {
	event, err := shared.NewEvent(eventType, key, shared.CorrelationIDFromContext(ctx), e.clock.Now(), payload)
	if err != nil {
		e.logger.Error("Failed to build event", "event_type", string(eventType), "key", key, "error", err)
		return
	}
	if err := e.publisher.Publish(ctx, event); err != nil {
		e.logger.Error("Failed to publish event", "event_type", string(eventType), "key", key, "error", err)
	}
}

// loggerFor adds the request's correlation id when present
func loggerFor(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id := shared.CorrelationIDFromContext(ctx); id != "" {
		return logger.With("correlation_id", id)
	}
	return logger
}
