package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// ListReservationsQuery filters the reservation listing. At most one of
// GuestID and RoomID is honored; GuestID takes precedence.
type ListReservationsQuery struct {
	GuestID *int64
	RoomID  *int64
}

// ListReservations lists base reservation records without enrichment
type ListReservations struct {
	reservationRepository domain.ReservationRepository
}

// NewListReservations creates a new ListReservations use case
func NewListReservations(reservationRepository domain.ReservationRepository) *ListReservations {
	return &ListReservations{
		reservationRepository: reservationRepository,
	}
}

// Execute executes the list-reservations query
func (uc *ListReservations) Execute(ctx context.Context, query *ListReservationsQuery) ([]*ReservationResponse, error) {
	var (
		reservations []*domain.Reservation
		err          error
	)

	switch {
	case query.GuestID != nil:
		reservations, err = uc.reservationRepository.FindByGuestID(ctx, models.ID(*query.GuestID))
	case query.RoomID != nil:
		reservations, err = uc.reservationRepository.FindByRoomID(ctx, models.ID(*query.RoomID))
	default:
		reservations, err = uc.reservationRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	responses := make([]*ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		responses[i] = newReservationResponse(reservation)
	}

	return responses, nil
}
