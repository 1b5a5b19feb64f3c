package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

func TestReservation_DecodesReservationPayload(t *testing.T) {
	payload := `{
		"id": 99,
		"guest_id": 7,
		"room_id": 42,
		"check_in_date": "2026-09-10",
		"check_out_date": "2026-09-13",
		"status": "checked-out",
		"nights": 3,
		"room": {"id":42,"number":"204","type":"double","price_per_night":120,"status":"available"}
	}`

	var reservation Reservation
	require.NoError(t, json.Unmarshal([]byte(payload), &reservation))

	assert.Equal(t, models.ID(99), reservation.ID)
	assert.Equal(t, 3, reservation.Nights)
	require.NotNil(t, reservation.Room)
	assert.Equal(t, "204", reservation.Room.Number)
	assert.Equal(t, "double", reservation.Room.Type)
	assert.Equal(t, 120.0, reservation.Room.PricePerNight)
	assert.Nil(t, reservation.Guest)
}
