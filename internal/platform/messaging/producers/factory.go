package producers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shannicec/moneymorph/internal/config"
)

// NewPublisher builds the event publisher for the service. With events
// disabled it returns a NoopPublisher; otherwise a Kafka producer behind a
// worker pool of cfg.WorkerPool.Size.
func NewPublisher(ctx context.Context, logger *slog.Logger, cfg *config.Config) (EventPublisher, error) {
	if !cfg.Events.Enabled {
		logger.Info("Event publishing disabled")
		return NoopPublisher{}, nil
	}

	producer, err := NewEventProducer(ctx, logger, &cfg.Kafka)
	if err != nil {
		return nil, err
	}

	async, err := NewAsyncPublisher(producer, cfg.WorkerPool.Size, logger.With("component", "event_pool"))
	if err != nil {
		_ = producer.Close()
		return nil, fmt.Errorf("failed to create event worker pool: %w", err)
	}

	logger.Info("Event publishing enabled",
		"topic", cfg.Kafka.EventsTopic,
		"pool_size", async.Capacity(),
	)
	return async, nil
}
