package shared

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is the envelope published to the events topic
type Event struct {
	EventID       uuid.UUID       `json:"event_id"`
	Type          EventType       `json:"type"`
	Key           string          `json:"key"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}

// NewEvent wraps payload in an envelope. key is the id of the record the
// event is about and becomes the message key.
func NewEvent(eventType EventType, key, correlationID string, occurredAt time.Time, payload any) (*Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		EventID:       uuid.New(),
		Type:          eventType,
		Key:           key,
		CorrelationID: correlationID,
		OccurredAt:    occurredAt.UTC(),
		Payload:       raw,
	}, nil
}
