package producers

import (
	"context"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/shannicec/moneymorph/internal/domain/shared"
)

// AsyncPublisher hands events to a worker pool so request handlers never wait
// on the broker. Publish failures are logged and dropped.
type AsyncPublisher struct {
	next   EventPublisher
	pool   *ants.Pool
	logger *slog.Logger
	wg     sync.WaitGroup
}

func NewAsyncPublisher(next EventPublisher, size int, logger *slog.Logger) (*AsyncPublisher, error) {
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}

	return &AsyncPublisher{
		next:   next,
		pool:   pool,
		logger: logger,
	}, nil
}

// Publish submits event to the pool. The returned error only reports a
// rejected submission.
func (p *AsyncPublisher) Publish(ctx context.Context, event *shared.Event) error {
	logger := p.logger
	if event.CorrelationID != "" {
		logger = p.logger.With("correlation_id", event.CorrelationID)
	}

	// the request context is cancelled once the response is written
	detached := context.WithoutCancel(ctx)

	p.wg.Add(1)
	err := p.pool.Submit(func() {
		defer p.wg.Done()
		if err := p.next.Publish(detached, event); err != nil {
			logger.Error("Failed to publish event",
				"event_type", string(event.Type),
				"key", event.Key,
				"error", err,
			)
		}
	})
	if err != nil {
		p.wg.Done()
		logger.Error("Failed to submit event to worker pool",
			"event_type", string(event.Type),
			"key", event.Key,
			"error", err,
		)
		return err
	}
	return nil
}

// Close waits for in-flight events, releases the pool and closes the
// wrapped publisher.
func (p *AsyncPublisher) Close() error {
	p.logger.Info("Shutting down event worker pool", "running_workers", p.pool.Running())
	p.wg.Wait()
	p.pool.Release()
	return p.next.Close()
}

// Running returns the number of running workers in the pool.
func (p *AsyncPublisher) Running() int {
	return p.pool.Running()
}

// Capacity returns the capacity of the worker pool.
func (p *AsyncPublisher) Capacity() int {
	return p.pool.Cap()
}
