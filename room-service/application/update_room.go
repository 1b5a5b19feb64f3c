package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/room-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// UpdateRoomCommand carries a partial room update. Nil fields are left
// unchanged.
type UpdateRoomCommand struct {
	RoomID        int64    `json:"-"`
	Number        *string  `json:"number"`
	Type          *string  `json:"type"`
	PricePerNight *float64 `json:"price_per_night"`
	Status        *string  `json:"status"`
}

// UpdateRoom applies a partial update to a room
type UpdateRoom struct {
	roomRepository domain.RoomRepository
}

// NewUpdateRoom creates a new UpdateRoom use case
func NewUpdateRoom(roomRepository domain.RoomRepository) *UpdateRoom {
	return &UpdateRoom{roomRepository: roomRepository}
}

// Execute executes the update-room command
func (uc *UpdateRoom) Execute(ctx context.Context, cmd *UpdateRoomCommand) (*RoomResponse, error) {
	room, err := uc.roomRepository.FindByID(ctx, models.ID(cmd.RoomID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find room")
	}
	if room == nil {
		return nil, errors.Wrapf(domain.ErrRoomNotFound, "room %d", cmd.RoomID)
	}

	if cmd.Number != nil {
		if *cmd.Number == "" {
			return nil, errors.Wrap(domain.ErrInvalidRoom, "number is required")
		}
		room.Number = *cmd.Number
	}
	if cmd.Type != nil {
		if *cmd.Type == "" {
			return nil, errors.Wrap(domain.ErrInvalidRoom, "type is required")
		}
		room.Type = *cmd.Type
	}
	if cmd.PricePerNight != nil {
		if *cmd.PricePerNight < 0 {
			return nil, errors.Wrap(domain.ErrInvalidRoom, "price_per_night must not be negative")
		}
		room.PricePerNight = *cmd.PricePerNight
	}
	if cmd.Status != nil {
		status, err := domain.NewRoomStatus(*cmd.Status)
		if err != nil {
			return nil, err
		}
		room.SetStatus(status)
	}
	room.Timestamps = room.Timestamps.Update()

	if err := uc.roomRepository.Update(ctx, room); err != nil {
		return nil, errors.Wrap(err, "failed to update room")
	}

	return newRoomResponse(room), nil
}
