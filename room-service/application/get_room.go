package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/room-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// GetRoomQuery identifies the room to fetch
type GetRoomQuery struct {
	RoomID int64
}

// GetRoom fetches a single room
type GetRoom struct {
	roomRepository domain.RoomRepository
}

// NewGetRoom creates a new GetRoom use case
func NewGetRoom(roomRepository domain.RoomRepository) *GetRoom {
	return &GetRoom{roomRepository: roomRepository}
}

// Execute executes the get-room query
func (uc *GetRoom) Execute(ctx context.Context, query *GetRoomQuery) (*RoomResponse, error) {
	room, err := uc.roomRepository.FindByID(ctx, models.ID(query.RoomID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find room")
	}
	if room == nil {
		return nil, errors.Wrapf(domain.ErrRoomNotFound, "room %d", query.RoomID)
	}

	return newRoomResponse(room), nil
}
