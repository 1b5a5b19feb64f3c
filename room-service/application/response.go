package application

import "github.com/rafifdzaky27/tubes-iae-pria/room-service/domain"

// RoomResponse is the room representation returned over HTTP
type RoomResponse struct {
	ID            int64   `json:"id"`
	Number        string  `json:"number"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"price_per_night"`
	Status        string  `json:"status"`
}

func newRoomResponse(room *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:            room.ID.Int64(),
		Number:        room.Number,
		Type:          room.Type,
		PricePerNight: room.PricePerNight,
		Status:        string(room.Status),
	}
}

func newRoomResponses(rooms []*domain.Room) []*RoomResponse {
	responses := make([]*RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = newRoomResponse(room)
	}
	return responses
}
