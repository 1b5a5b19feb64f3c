package domain

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

var ErrReservationNotFound = errors.New("reservation not found")

// Room is the room snapshot embedded in a reservation fetched from the
// reservation service
type Room struct {
	ID            models.ID `json:"id"`
	Number        string    `json:"number"`
	Type          string    `json:"type"`
	PricePerNight float64   `json:"price_per_night"`
	Status        string    `json:"status"`
}

// Guest is the guest snapshot embedded in a reservation fetched from the
// reservation service
type Guest struct {
	ID       models.ID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

// Reservation is the reservation snapshot returned by the reservation
// service. Guest and Room are best-effort and may be absent.
type Reservation struct {
	ID           models.ID   `json:"id"`
	GuestID      models.ID   `json:"guest_id"`
	RoomID       models.ID   `json:"room_id"`
	CheckInDate  models.Date `json:"check_in_date"`
	CheckOutDate models.Date `json:"check_out_date"`
	Status       string      `json:"status"`
	Nights       int         `json:"nights"`
	Guest        *Guest      `json:"guest,omitempty"`
	Room         *Room       `json:"room,omitempty"`
}

// ReservationGateway reads reservations from the reservation service.
// GetReservation returns (nil, nil) when the reservation does not exist.
type ReservationGateway interface {
	GetReservation(ctx context.Context, id models.ID) (*Reservation, error)
}
