package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

var (
	ErrInvalidTopic    = errors.New("invalid topic")
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrInvalidReceiver = errors.New("receiver should be a pointer")
)

// Reservation lifecycle topics published by the reservation service.
const (
	ReservationCreatedTopic                = "reservation.created"
	ReservationUpdatedTopic                = "reservation.updated"
	ReservationCancelledTopic              = "reservation.cancelled"
	ReservationCheckedOutTopic             = "reservation.checked_out"
	ReservationReconciliationRequiredTopic = "reservation.reconciliation_required"
)

// Topic represents an event topic with dot-separated segments. Patterns may
// use "*" for a single segment or a trailing "#" for any suffix.
type Topic string

func NewTopic(topic string) (Topic, error) {
	if topic == "" {
		return "", ErrInvalidTopic
	}
	return Topic(topic), nil
}

func (t Topic) String() string {
	return string(t)
}

func (t Topic) Matches(pattern Topic) bool {
	if pattern == "#" || t == pattern {
		return true
	}

	patternStr := pattern.String()
	if strings.HasSuffix(patternStr, ".#") {
		return strings.HasPrefix(t.String(), strings.TrimSuffix(patternStr, "#"))
	}

	patternParts := strings.Split(patternStr, ".")
	topicParts := strings.Split(t.String(), ".")
	if len(patternParts) != len(topicParts) {
		return false
	}
	for i, part := range patternParts {
		if part != "*" && part != topicParts[i] {
			return false
		}
	}
	return true
}

// Metadata represents event metadata
type Metadata map[string]string

func (m Metadata) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Metadata) Set(key string, value string) {
	m[key] = value
}

func (m Metadata) Clone() Metadata {
	clone := Metadata{}
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// Event represents a domain event emitted by one of the services
type Event struct {
	ID            string    `json:"id"`
	AggregateID   models.ID `json:"aggregate_id"`
	Topic         Topic     `json:"topic"`
	Data          any       `json:"data"`
	Metadata      Metadata  `json:"metadata"`
	Timestamp     time.Time `json:"timestamp"`
	CorrelationID string    `json:"correlation_id"`
}

// NewEvent creates a new domain event
func NewEvent(aggregateID models.ID, topic Topic, data any) *Event {
	return &Event{
		ID:          uuid.New().String(),
		AggregateID: aggregateID,
		Topic:       topic,
		Data:        data,
		Metadata:    make(Metadata),
		Timestamp:   time.Now(),
	}
}

// WithCorrelationID sets correlation ID
func (e *Event) WithCorrelationID(correlationID string) *Event {
	e.CorrelationID = correlationID
	return e
}

// WithMetadata adds metadata
func (e *Event) WithMetadata(key string, value string) *Event {
	if e.Metadata == nil {
		e.Metadata = make(Metadata)
	}
	e.Metadata.Set(key, value)
	return e
}

// MarshalPayload marshals the event payload
func (e *Event) MarshalPayload() (json.RawMessage, error) {
	if b, ok := e.Data.([]byte); ok {
		return b, nil
	}
	if b, ok := e.Data.(json.RawMessage); ok {
		return b, nil
	}
	return json.Marshal(e.Data)
}

// UnmarshalPayload unmarshals the event payload into the given receiver
func (e *Event) UnmarshalPayload(v any) error {
	switch data := e.Data.(type) {
	case []byte:
		return json.Unmarshal(data, v)
	case json.RawMessage:
		return json.Unmarshal(data, v)
	default:
		raw, err := json.Marshal(data)
		if err != nil {
			return errors.Wrap(ErrInvalidPayload, err.Error())
		}
		return json.Unmarshal(raw, v)
	}
}

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, events ...*Event) error
}

// Subscriber subscribes to events
type Subscriber interface {
	Subscribe(ctx context.Context, pattern Topic, handler EventHandler) error
}

// EventHandler handles domain events
type EventHandler interface {
	Handle(ctx context.Context, event *Event) error
}

// EventHandlerFunc adapts a function to the EventHandler interface
type EventHandlerFunc func(ctx context.Context, event *Event) error

func (f EventHandlerFunc) Handle(ctx context.Context, event *Event) error {
	return f(ctx, event)
}

// ReservationEventData is the payload of reservation lifecycle events
type ReservationEventData struct {
	ReservationID int64       `json:"reservation_id"`
	GuestID       int64       `json:"guest_id"`
	RoomID        int64       `json:"room_id"`
	CheckInDate   models.Date `json:"check_in_date"`
	CheckOutDate  models.Date `json:"check_out_date"`
	Status        string      `json:"status"`
	Nights        int         `json:"nights"`
}

// ReconciliationRequiredData is the payload of reconciliation alerts
type ReconciliationRequiredData struct {
	ReservationID int64  `json:"reservation_id"`
	RoomID        int64  `json:"room_id"`
	Compensation  string `json:"compensation"`
	Detail        string `json:"detail"`
}
