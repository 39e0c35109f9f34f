// Package audit consumes treasury domain events and writes them to the
// structured log as an audit trail.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/shannicec/moneymorph/internal/platform/messaging/producers"
)

var (
	errMissingEventID = errors.New("event has no event_id")
	errUnknownType    = errors.New("unknown event type")
)

// EventHandler records every well-formed event and dead-letters the rest
type EventHandler struct {
	dlq    producers.DeadLetterPublisher
	logger *slog.Logger

	mu     sync.Mutex
	counts map[shared.EventType]int
}

// NewEventHandler creates a new handler. dlq may be nil.
func NewEventHandler(logger *slog.Logger, dlq producers.DeadLetterPublisher) *EventHandler {
	return &EventHandler{
		dlq:    dlq,
		logger: logger,
		counts: make(map[shared.EventType]int),
	}
}

// HandleMessage is a consumers.MessageHandler
func (h *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	event, err := decode(msg.Value)
	if err != nil {
		return h.reject(ctx, msg, err)
	}

	logger := h.logger
	if event.CorrelationID != "" {
		logger = h.logger.With("correlation_id", event.CorrelationID)
	}

	logger.Info("Audit event",
		"event_id", event.EventID.String(),
		"event_type", string(event.Type),
		"key", event.Key,
		"occurred_at", event.OccurredAt,
		"partition", msg.Partition,
		"offset", msg.Offset,
		"payload", string(event.Payload),
	)

	h.mu.Lock()
	h.counts[event.Type]++
	h.mu.Unlock()
	return nil
}

// Counts returns how many events of each type were audited
func (h *EventHandler) Counts() map[shared.EventType]int {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make(map[shared.EventType]int, len(h.counts))
	for k, v := range h.counts {
		out[k] = v
	}
	return out
}

func decode(value []byte) (shared.Event, error) {
	var event shared.Event
	if err := json.Unmarshal(value, &event); err != nil {
		return event, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.EventID == uuid.Nil {
		return event, errMissingEventID
	}
	if !event.Type.Known() {
		return event, fmt.Errorf("%w: %q", errUnknownType, event.Type)
	}
	return event, nil
}

// reject commits the offset once the message is safely dead-lettered.
// Without a DLQ the message is logged and skipped since redelivery cannot fix it.
func (h *EventHandler) reject(ctx context.Context, msg kafka.Message, cause error) error {
	h.logger.Error("Rejecting undecodable event",
		"error", cause,
		"message_key", string(msg.Key),
	)

	if h.dlq == nil {
		return nil
	}

	if err := h.dlq.PublishToDLQ(ctx, string(msg.Key), msg.Value, cause.Error()); err != nil {
		h.logger.Error("Failed to publish message to DLQ",
			"dlq_error", err,
			"original_error", cause,
			"message_key", string(msg.Key),
		)
		return fmt.Errorf("dead-lettering %q: %w", string(msg.Key), err)
	}
	return nil
}
