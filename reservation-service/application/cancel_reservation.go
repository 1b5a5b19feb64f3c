package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/events"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// CancelReservationCommand represents the command to cancel a reservation
type CancelReservationCommand struct {
	ReservationID int64 `json:"-"`
}

// CancelReservation releases the room and deletes the reservation record,
// in that order. If the release fails the deletion must not proceed: an
// orphaned reservation stays queryable for manual reconciliation, while a
// silently unreserved room could be double-booked.
type CancelReservation struct {
	reservationRepository domain.ReservationRepository
	inventory             domain.InventoryGateway
	reconciliations       domain.ReconciliationLog
	eventPublisher        events.Publisher
	logger                *slog.Logger
}

// NewCancelReservation creates a new CancelReservation use case
func NewCancelReservation(
	reservationRepository domain.ReservationRepository,
	inventory domain.InventoryGateway,
	reconciliations domain.ReconciliationLog,
	eventPublisher events.Publisher,
	logger *slog.Logger,
) *CancelReservation {
	return &CancelReservation{
		reservationRepository: reservationRepository,
		inventory:             inventory,
		reconciliations:       reconciliations,
		eventPublisher:        eventPublisher,
		logger:                logger,
	}
}

// Execute executes the cancel-reservation workflow
func (uc *CancelReservation) Execute(ctx context.Context, cmd *CancelReservationCommand) error {
	reservationID := models.ID(cmd.ReservationID)

	reservation, err := uc.reservationRepository.FindByID(ctx, reservationID)
	if err != nil {
		return errors.Wrap(err, "failed to find reservation")
	}
	if reservation == nil {
		return errors.Wrapf(domain.ErrReservationNotFound, "reservation %s", reservationID)
	}

	log := uc.logger.With(
		slog.Int64("reservation_id", reservationID.Int64()),
		slog.Int64("room_id", reservation.RoomID.Int64()),
	)

	if _, err := uc.inventory.SetRoomStatus(ctx, reservation.RoomID, domain.RoomStatusAvailable); err != nil {
		log.Warn("room release failed, keeping reservation", "error", err)
		return errors.Wrap(err, "failed to release room")
	}

	if err := uc.reservationRepository.Delete(ctx, reservationID); err != nil {
		// The room is already free while the reservation still exists;
		// record the divergence instead of leaving it silent.
		escalateReconciliation(context.WithoutCancel(ctx), log, uc.reconciliations, uc.eventPublisher,
			reservationID, reservation.RoomID, "delete_reservation", err)
		return errors.Wrap(err, "failed to delete reservation")
	}

	log.Info("reservation cancelled")
	publishEvent(ctx, log, uc.eventPublisher,
		events.NewEvent(reservationID, events.ReservationCancelledTopic, reservationEventData(reservation)))

	return nil
}
