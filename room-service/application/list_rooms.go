package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/room-service/domain"
)

// ListRoomsQuery filters the room listing by status when Status is set
type ListRoomsQuery struct {
	Status string
}

// ListRooms lists rooms, optionally filtered by status
type ListRooms struct {
	roomRepository domain.RoomRepository
}

// NewListRooms creates a new ListRooms use case
func NewListRooms(roomRepository domain.RoomRepository) *ListRooms {
	return &ListRooms{roomRepository: roomRepository}
}

// Execute executes the list-rooms query
func (uc *ListRooms) Execute(ctx context.Context, query *ListRoomsQuery) ([]*RoomResponse, error) {
	if query.Status != "" {
		status, err := domain.NewRoomStatus(query.Status)
		if err != nil {
			return nil, err
		}

		rooms, err := uc.roomRepository.FindByStatus(ctx, status)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list rooms by status")
		}
		return newRoomResponses(rooms), nil
	}

	rooms, err := uc.roomRepository.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rooms")
	}
	return newRoomResponses(rooms), nil
}
