package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

func TestRoom_DecodesInventoryPayload(t *testing.T) {
	payload := `{"id":42,"number":"204","type":"double","price_per_night":120,"status":"available"}`

	var room Room
	require.NoError(t, json.Unmarshal([]byte(payload), &room))

	assert.Equal(t, models.ID(42), room.ID)
	assert.Equal(t, "204", room.Number)
	assert.Equal(t, "double", room.Type)
	assert.Equal(t, 120.0, room.PricePerNight)
	assert.Equal(t, RoomStatusAvailable, room.Status)
}

func TestGuest_DecodesDirectoryPayload(t *testing.T) {
	payload := `{"id":7,"full_name":"Ana Pertiwi","email":"ana@example.com","phone":"+62-812-0001","address":"Jl. Braga 5, Bandung"}`

	var guest Guest
	require.NoError(t, json.Unmarshal([]byte(payload), &guest))

	assert.Equal(t, models.ID(7), guest.ID)
	assert.Equal(t, "Ana Pertiwi", guest.FullName)
	assert.Equal(t, "ana@example.com", guest.Email)
}
