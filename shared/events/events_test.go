package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

func TestTopic_Matches(t *testing.T) {
	tests := []struct {
		topic   Topic
		pattern Topic
		matches bool
	}{
		{"reservation.created", "reservation.created", true},
		{"reservation.created", "reservation.updated", false},
		{"reservation.created", "reservation.*", true},
		{"reservation.checked_out", "reservation.*", true},
		{"reservation.created", "*.created", true},
		{"reservation.created", "reservation.#", true},
		{"reservation.reconciliation_required", "reservation.#", true},
		{"billing.generated", "reservation.#", false},
		{"reservation.created", "#", true},
		{"reservation.created", "reservation", false},
		{"reservation", "reservation.*", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.topic)+" vs "+string(tt.pattern), func(t *testing.T) {
			assert.Equal(t, tt.matches, tt.topic.Matches(tt.pattern))
		})
	}
}

func TestNewTopic(t *testing.T) {
	topic, err := NewTopic("reservation.created")
	require.NoError(t, err)
	assert.Equal(t, Topic("reservation.created"), topic)

	_, err = NewTopic("")
	assert.ErrorIs(t, err, ErrInvalidTopic)
}

func TestNewEvent(t *testing.T) {
	data := ReservationEventData{ReservationID: 99, GuestID: 7, RoomID: 42}
	event := NewEvent(models.ID(99), ReservationCreatedTopic, data).
		WithCorrelationID("corr-1").
		WithMetadata("source", "reservation-service")

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, models.ID(99), event.AggregateID)
	assert.Equal(t, Topic(ReservationCreatedTopic), event.Topic)
	assert.Equal(t, "corr-1", event.CorrelationID)
	assert.False(t, event.Timestamp.IsZero())

	source, ok := event.Metadata.Get("source")
	assert.True(t, ok)
	assert.Equal(t, "reservation-service", source)
}

func TestEvent_UnmarshalPayload(t *testing.T) {
	original := ReservationEventData{
		ReservationID: 99,
		GuestID:       7,
		RoomID:        42,
		Status:        "checked-out",
		Nights:        3,
	}

	t.Run("typed payload", func(t *testing.T) {
		event := NewEvent(models.ID(99), ReservationCheckedOutTopic, original)

		var decoded ReservationEventData
		require.NoError(t, event.UnmarshalPayload(&decoded))
		assert.Equal(t, original, decoded)
	})

	t.Run("raw payload from the wire", func(t *testing.T) {
		raw, err := json.Marshal(original)
		require.NoError(t, err)
		event := NewEvent(models.ID(99), ReservationCheckedOutTopic, json.RawMessage(raw))

		var decoded ReservationEventData
		require.NoError(t, event.UnmarshalPayload(&decoded))
		assert.Equal(t, original, decoded)
	})
}
