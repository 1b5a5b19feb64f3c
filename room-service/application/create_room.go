package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/room-service/domain"
)

// CreateRoomCommand carries the data to register a new room. Status is
// optional and defaults to available.
type CreateRoomCommand struct {
	Number        string  `json:"number"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"price_per_night"`
	Status        string  `json:"status,omitempty"`
}

// CreateRoom registers a new room in the inventory
type CreateRoom struct {
	roomRepository domain.RoomRepository
}

// NewCreateRoom creates a new CreateRoom use case
func NewCreateRoom(roomRepository domain.RoomRepository) *CreateRoom {
	return &CreateRoom{roomRepository: roomRepository}
}

// Execute executes the create-room command
func (uc *CreateRoom) Execute(ctx context.Context, cmd *CreateRoomCommand) (*RoomResponse, error) {
	room, err := domain.NewRoom(cmd.Number, cmd.Type, cmd.PricePerNight)
	if err != nil {
		return nil, err
	}

	if cmd.Status != "" {
		status, err := domain.NewRoomStatus(cmd.Status)
		if err != nil {
			return nil, err
		}
		room.Status = status
	}

	if err := uc.roomRepository.Save(ctx, room); err != nil {
		return nil, errors.Wrap(err, "failed to save room")
	}

	return newRoomResponse(room), nil
}
