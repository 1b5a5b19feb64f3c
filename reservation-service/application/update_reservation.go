package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/events"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// UpdateReservationCommand represents the command to update a reservation.
// Nil fields are left unchanged.
type UpdateReservationCommand struct {
	ReservationID int64        `json:"-"`
	GuestID       *int64       `json:"guest_id,omitempty"`
	RoomID        *int64       `json:"room_id,omitempty"`
	CheckInDate   *models.Date `json:"check_in_date,omitempty"`
	CheckOutDate  *models.Date `json:"check_out_date,omitempty"`
	Status        *string      `json:"status,omitempty"`
}

// UpdateReservation applies a reservation update, orchestrating the room
// moves it implies. When the room changes, the new room is confirmed and
// locked before the old one is released, and the old room is released only
// after the local persist: a brief double-reservation window is preferred
// over ever losing room ownership entirely.
type UpdateReservation struct {
	reservationRepository domain.ReservationRepository
	inventory             domain.InventoryGateway
	directory             domain.DirectoryGateway
	reconciliations       domain.ReconciliationLog
	eventPublisher        events.Publisher
	logger                *slog.Logger
}

// NewUpdateReservation creates a new UpdateReservation use case
func NewUpdateReservation(
	reservationRepository domain.ReservationRepository,
	inventory domain.InventoryGateway,
	directory domain.DirectoryGateway,
	reconciliations domain.ReconciliationLog,
	eventPublisher events.Publisher,
	logger *slog.Logger,
) *UpdateReservation {
	return &UpdateReservation{
		reservationRepository: reservationRepository,
		inventory:             inventory,
		directory:             directory,
		reconciliations:       reconciliations,
		eventPublisher:        eventPublisher,
		logger:                logger,
	}
}

// Execute executes the update-reservation workflow
func (uc *UpdateReservation) Execute(ctx context.Context, cmd *UpdateReservationCommand) (*ReservationResponse, error) {
	reservationID := models.ID(cmd.ReservationID)

	reservation, err := uc.reservationRepository.FindByID(ctx, reservationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reservation")
	}
	if reservation == nil {
		return nil, errors.Wrapf(domain.ErrReservationNotFound, "reservation %s", reservationID)
	}

	log := uc.logger.With(slog.Int64("reservation_id", reservationID.Int64()))

	var newStatus *domain.ReservationStatus
	if cmd.Status != nil {
		status, err := domain.NewReservationStatus(*cmd.Status)
		if err != nil {
			return nil, err
		}
		newStatus = &status
	}

	oldRoomID := reservation.RoomID
	roomChanged := cmd.RoomID != nil && models.ID(*cmd.RoomID) != reservation.RoomID

	if roomChanged {
		newRoomID := models.ID(*cmd.RoomID)

		// Validate and lock the new room before touching the old one so
		// the reservation never holds zero rooms.
		newRoom, err := uc.inventory.GetRoom(ctx, newRoomID)
		if err != nil {
			return nil, errors.Wrap(err, "availability check failed")
		}
		if newRoom == nil {
			return nil, errors.Wrapf(domain.ErrRoomNotFound, "room %s", newRoomID)
		}
		if newRoom.Status != domain.RoomStatusAvailable {
			return nil, errors.Wrapf(domain.ErrRoomUnavailable, "room %s is %s", newRoomID, newRoom.Status)
		}

		if _, err := uc.inventory.SetRoomStatus(ctx, newRoomID, domain.RoomStatusReserved); err != nil {
			return nil, errors.Wrap(err, "failed to reserve new room")
		}

		reservation.RoomID = newRoomID
	}

	if cmd.GuestID != nil {
		reservation.GuestID = models.ID(*cmd.GuestID)
	}

	checkIn := reservation.CheckInDate
	checkOut := reservation.CheckOutDate
	if cmd.CheckInDate != nil {
		checkIn = *cmd.CheckInDate
	}
	if cmd.CheckOutDate != nil {
		checkOut = *cmd.CheckOutDate
	}
	if err := reservation.SetStay(checkIn, checkOut); err != nil {
		if roomChanged {
			uc.releaseRoom(ctx, log, reservation.ID, reservation.RoomID, "release_new_room")
			reservation.RoomID = oldRoomID
		}
		return nil, err
	}

	checkingOut := newStatus != nil &&
		*newStatus == domain.ReservationStatusCheckedOut &&
		reservation.Status != domain.ReservationStatusCheckedOut
	if newStatus != nil {
		reservation.SetStatus(*newStatus)
	}

	if err := uc.reservationRepository.Update(ctx, reservation); err != nil {
		if roomChanged {
			// Undo the new-room lock; the old room was never released.
			uc.releaseRoom(ctx, log, reservation.ID, reservation.RoomID, "release_new_room")
		}
		return nil, errors.Wrap(err, "failed to persist reservation")
	}

	if roomChanged {
		// Release the old room only now that the new reference is durable.
		uc.releaseRoom(ctx, log, reservation.ID, oldRoomID, "release_old_room")
	}

	if checkingOut {
		// Status wins: the checked-out status is final regardless of
		// whether this release succeeds.
		uc.releaseRoom(ctx, log, reservation.ID, reservation.RoomID, "release_room_checkout")
	}

	response := newReservationResponse(reservation)
	if room, err := uc.inventory.GetRoom(ctx, reservation.RoomID); err != nil {
		log.Warn("room snapshot unavailable, returning degraded response", "error", err)
	} else {
		response.Room = room
	}
	if guest, err := uc.directory.GetGuest(ctx, reservation.GuestID); err != nil {
		log.Warn("guest snapshot unavailable, returning degraded response", "error", err)
	} else {
		response.Guest = guest
	}

	publishEvent(ctx, log, uc.eventPublisher,
		events.NewEvent(reservation.ID, events.ReservationUpdatedTopic, reservationEventData(reservation)))
	if checkingOut {
		publishEvent(ctx, log, uc.eventPublisher,
			events.NewEvent(reservation.ID, events.ReservationCheckedOutTopic, reservationEventData(reservation)))
	}

	return response, nil
}

// releaseRoom makes a best-effort release of a room to available. A failure
// leaves the room locked with no active claim, which is escalated as a
// reconciliation candidate.
func (uc *UpdateReservation) releaseRoom(ctx context.Context, log *slog.Logger, reservationID, roomID models.ID, compensation string) {
	ctx = context.WithoutCancel(ctx)

	if _, err := uc.inventory.SetRoomStatus(ctx, roomID, domain.RoomStatusAvailable); err != nil {
		escalateReconciliation(ctx, log, uc.reconciliations, uc.eventPublisher,
			reservationID, roomID, compensation, err)
		return
	}

	compensations.WithLabelValues(compensation, "ok").Inc()
}
