package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/room-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// SetRoomStatusCommand transitions a room to a new status. This is the
// endpoint the reservation orchestrator drives during booking, release and
// checkout, so it stays separate from the general room update.
type SetRoomStatusCommand struct {
	RoomID int64  `json:"-"`
	Status string `json:"status"`
}

// SetRoomStatus transitions a room's status
type SetRoomStatus struct {
	roomRepository domain.RoomRepository
	logger         *slog.Logger
}

// NewSetRoomStatus creates a new SetRoomStatus use case
func NewSetRoomStatus(roomRepository domain.RoomRepository, logger *slog.Logger) *SetRoomStatus {
	return &SetRoomStatus{
		roomRepository: roomRepository,
		logger:         logger,
	}
}

// Execute executes the set-room-status command
func (uc *SetRoomStatus) Execute(ctx context.Context, cmd *SetRoomStatusCommand) (*RoomResponse, error) {
	status, err := domain.NewRoomStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	room, err := uc.roomRepository.FindByID(ctx, models.ID(cmd.RoomID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find room")
	}
	if room == nil {
		return nil, errors.Wrapf(domain.ErrRoomNotFound, "room %d", cmd.RoomID)
	}

	previous := room.Status
	room.SetStatus(status)

	if err := uc.roomRepository.Update(ctx, room); err != nil {
		return nil, errors.Wrap(err, "failed to update room status")
	}

	uc.logger.Info("room status changed",
		slog.Int64("room_id", cmd.RoomID),
		slog.String("from", string(previous)),
		slog.String("to", string(status)),
	)

	return newRoomResponse(room), nil
}
