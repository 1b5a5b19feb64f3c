package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// GetReservationQuery represents the query to get a reservation
type GetReservationQuery struct {
	ReservationID int64 `json:"reservation_id"`
}

// GetReservation assembles the reservation record plus best-effort guest
// and room snapshots. The two fetches are independent: a failure on one
// neither cancels the other nor fails the query, the field is simply left
// absent.
type GetReservation struct {
	reservationRepository domain.ReservationRepository
	inventory             domain.InventoryGateway
	directory             domain.DirectoryGateway
	logger                *slog.Logger
}

// NewGetReservation creates a new GetReservation use case
func NewGetReservation(
	reservationRepository domain.ReservationRepository,
	inventory domain.InventoryGateway,
	directory domain.DirectoryGateway,
	logger *slog.Logger,
) *GetReservation {
	return &GetReservation{
		reservationRepository: reservationRepository,
		inventory:             inventory,
		directory:             directory,
		logger:                logger,
	}
}

// Execute executes the get-reservation query
func (uc *GetReservation) Execute(ctx context.Context, query *GetReservationQuery) (*ReservationResponse, error) {
	reservationID := models.ID(query.ReservationID)

	reservation, err := uc.reservationRepository.FindByID(ctx, reservationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reservation")
	}
	if reservation == nil {
		return nil, errors.Wrapf(domain.ErrReservationNotFound, "reservation %s", reservationID)
	}

	response := newReservationResponse(reservation)
	log := uc.logger.With(slog.Int64("reservation_id", reservationID.Int64()))

	// Both goroutines always return nil so one failed fetch never cancels
	// the group context of the other.
	gr, ctx := errgroup.WithContext(ctx)
	gr.Go(func() error {
		guest, err := uc.directory.GetGuest(ctx, reservation.GuestID)
		if err != nil {
			log.Warn("guest snapshot unavailable, returning degraded response", "error", err)
			return nil
		}
		response.Guest = guest
		return nil
	})
	gr.Go(func() error {
		room, err := uc.inventory.GetRoom(ctx, reservation.RoomID)
		if err != nil {
			log.Warn("room snapshot unavailable, returning degraded response", "error", err)
			return nil
		}
		response.Room = room
		return nil
	})
	_ = gr.Wait()

	return response, nil
}
