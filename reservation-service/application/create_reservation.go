package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/events"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// CreateReservationCommand represents the command to create a reservation
type CreateReservationCommand struct {
	GuestID      int64       `json:"guest_id"`
	RoomID       int64       `json:"room_id"`
	CheckInDate  models.Date `json:"check_in_date"`
	CheckOutDate models.Date `json:"check_out_date"`
	Status       string      `json:"status,omitempty"`
}

// CreateReservation drives the booking workflow across the inventory and
// directory services. No shared transaction exists, so the ordered steps
// and the compensation on persist failure are what keep Reservation.status
// and Room.status from permanently diverging.
type CreateReservation struct {
	reservationRepository domain.ReservationRepository
	inventory             domain.InventoryGateway
	directory             domain.DirectoryGateway
	reconciliations       domain.ReconciliationLog
	eventPublisher        events.Publisher
	logger                *slog.Logger
}

// NewCreateReservation creates a new CreateReservation use case
func NewCreateReservation(
	reservationRepository domain.ReservationRepository,
	inventory domain.InventoryGateway,
	directory domain.DirectoryGateway,
	reconciliations domain.ReconciliationLog,
	eventPublisher events.Publisher,
	logger *slog.Logger,
) *CreateReservation {
	return &CreateReservation{
		reservationRepository: reservationRepository,
		inventory:             inventory,
		directory:             directory,
		reconciliations:       reconciliations,
		eventPublisher:        eventPublisher,
		logger:                logger,
	}
}

// Execute executes the create-reservation workflow
func (uc *CreateReservation) Execute(ctx context.Context, cmd *CreateReservationCommand) (*ReservationResponse, error) {
	status := domain.ReservationStatusConfirmed
	if cmd.Status != "" {
		var err error
		status, err = domain.NewReservationStatus(cmd.Status)
		if err != nil {
			return nil, err
		}
	}

	reservation, err := domain.NewReservation(
		models.ID(cmd.GuestID),
		models.ID(cmd.RoomID),
		cmd.CheckInDate,
		cmd.CheckOutDate,
		status,
	)
	if err != nil {
		return nil, err
	}

	exec := newBookingExecution(reservation.GuestID, reservation.RoomID)
	log := uc.logger.With(
		slog.String("execution_id", exec.ID),
		slog.Int64("room_id", reservation.RoomID.Int64()),
		slog.Int64("guest_id", reservation.GuestID.Int64()),
	)
	log.Info("starting booking workflow", "state", string(exec.State))

	// Availability check. Advisory only: a concurrent workflow can pass it
	// for the same room, the reserve call below is the source of truth.
	room, err := uc.inventory.GetRoom(ctx, reservation.RoomID)
	if err != nil {
		exec.fail(err)
		bookingAttempts.WithLabelValues("unreachable").Inc()
		return nil, errors.Wrap(err, "availability check failed")
	}
	if room == nil {
		exec.fail(domain.ErrRoomNotFound)
		bookingAttempts.WithLabelValues("room_not_found").Inc()
		return nil, errors.Wrapf(domain.ErrRoomNotFound, "room %s", reservation.RoomID)
	}
	if room.Status != domain.RoomStatusAvailable {
		exec.fail(domain.ErrRoomUnavailable)
		bookingAttempts.WithLabelValues("conflict").Inc()
		return nil, errors.Wrapf(domain.ErrRoomUnavailable, "room %s is %s", reservation.RoomID, room.Status)
	}

	// Reserve. Once this succeeds remotely the room is locked to this
	// workflow even though no local record exists yet.
	exec.advance(stateReservingRoom)
	log.Info("reserving room", "state", string(exec.State))
	if _, err := uc.inventory.SetRoomStatus(ctx, reservation.RoomID, domain.RoomStatusReserved); err != nil {
		// No local state was created, nothing to compensate.
		exec.fail(err)
		bookingAttempts.WithLabelValues("reserve_failed").Inc()
		return nil, errors.Wrap(err, "failed to reserve room")
	}

	exec.advance(statePersisting)
	if err := uc.reservationRepository.Save(ctx, reservation); err != nil {
		exec.advance(stateCompensating)
		log.Warn("persist failed, compensating room reservation", "error", err)
		uc.releaseReservedRoom(ctx, log, reservation.ID, reservation.RoomID)
		exec.fail(err)
		bookingAttempts.WithLabelValues("persist_failed").Inc()
		return nil, errors.Wrap(err, "failed to persist reservation")
	}

	// Enrichment is non-fatal: the reservation already exists and is valid.
	exec.advance(stateEnriching)
	response := newReservationResponse(reservation)

	if guest, err := uc.directory.GetGuest(ctx, reservation.GuestID); err != nil {
		log.Warn("guest snapshot unavailable, returning degraded response", "error", err)
	} else {
		response.Guest = guest
	}
	if room, err := uc.inventory.GetRoom(ctx, reservation.RoomID); err != nil {
		log.Warn("room snapshot unavailable, returning degraded response", "error", err)
	} else {
		response.Room = room
	}

	exec.advance(stateDone)
	bookingAttempts.WithLabelValues("success").Inc()
	log.Info("booking workflow completed",
		"state", string(exec.State),
		"reservation_id", reservation.ID.Int64(),
	)

	publishEvent(ctx, log, uc.eventPublisher,
		events.NewEvent(reservation.ID, events.ReservationCreatedTopic, reservationEventData(reservation)).
			WithCorrelationID(exec.ID))

	return response, nil
}

// releaseReservedRoom is the compensating call for a persist failure. When
// the compensation itself fails, the reserved room has no owning
// reservation; the divergence is escalated as a reconciliation candidate,
// never swallowed.
func (uc *CreateReservation) releaseReservedRoom(ctx context.Context, log *slog.Logger, reservationID, roomID models.ID) {
	// The compensation must run even when the invoking request was
	// cancelled mid-workflow.
	ctx = context.WithoutCancel(ctx)

	if _, err := uc.inventory.SetRoomStatus(ctx, roomID, domain.RoomStatusAvailable); err != nil {
		escalateReconciliation(ctx, log, uc.reconciliations, uc.eventPublisher,
			reservationID, roomID, "release_room", err)
		return
	}

	compensations.WithLabelValues("release_room", "ok").Inc()
	log.Info("released room after persist failure", "room_id", roomID.Int64())
}
