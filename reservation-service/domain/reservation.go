package domain

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// ReservationStatus represents the status of a reservation. The set is
// closed; unknown values are rejected at the boundary.
type ReservationStatus string

const (
	ReservationStatusConfirmed  ReservationStatus = "confirmed"
	ReservationStatusCheckedIn  ReservationStatus = "checked-in"
	ReservationStatusCheckedOut ReservationStatus = "checked-out"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
)

// NewReservationStatus parses and validates a reservation status
func NewReservationStatus(s string) (ReservationStatus, error) {
	switch status := ReservationStatus(s); status {
	case ReservationStatusConfirmed, ReservationStatusCheckedIn,
		ReservationStatusCheckedOut, ReservationStatusCancelled:
		return status, nil
	default:
		return "", errors.Wrapf(ErrInvalidStatus, "%q", s)
	}
}

// Reservation is the authoritative booking record. The guest and room are
// references to entities owned by the directory and inventory services.
type Reservation struct {
	ID           models.ID
	GuestID      models.ID
	RoomID       models.ID
	CheckInDate  models.Date
	CheckOutDate models.Date
	Status       ReservationStatus
	Timestamps   models.Timestamps
}

// NewReservation creates a reservation in the given status after validating
// the stay window. A same-day check-out is allowed and counts as one night.
func NewReservation(guestID, roomID models.ID, checkIn, checkOut models.Date, status ReservationStatus) (*Reservation, error) {
	if guestID.IsZero() {
		return nil, errors.Wrap(ErrInvalidReference, "guest id is required")
	}
	if roomID.IsZero() {
		return nil, errors.Wrap(ErrInvalidReference, "room id is required")
	}
	if checkOut.Before(checkIn) {
		return nil, ErrInvalidStay
	}

	return &Reservation{
		GuestID:      guestID,
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
		Timestamps:   models.NewTimestamps(),
	}, nil
}

// Nights returns the billable length of the stay
func (r *Reservation) Nights() int {
	return models.Nights(r.CheckInDate, r.CheckOutDate)
}

// Active reports whether the reservation still holds its room
func (r *Reservation) Active() bool {
	return r.Status != ReservationStatusCancelled && r.Status != ReservationStatusCheckedOut
}

// SetStay updates the stay window, keeping the invariant
func (r *Reservation) SetStay(checkIn, checkOut models.Date) error {
	if checkOut.Before(checkIn) {
		return ErrInvalidStay
	}
	r.CheckInDate = checkIn
	r.CheckOutDate = checkOut
	r.Timestamps = r.Timestamps.Update()
	return nil
}

// SetStatus transitions the reservation to a validated status
func (r *Reservation) SetStatus(status ReservationStatus) {
	r.Status = status
	r.Timestamps = r.Timestamps.Update()
}

// ReservationRepository owns persistence of the reservation record. FindByID
// returns (nil, nil) when no reservation exists.
type ReservationRepository interface {
	Save(ctx context.Context, reservation *Reservation) error
	Update(ctx context.Context, reservation *Reservation) error
	Delete(ctx context.Context, id models.ID) error
	FindByID(ctx context.Context, id models.ID) (*Reservation, error)
	FindAll(ctx context.Context) ([]*Reservation, error)
	FindByGuestID(ctx context.Context, guestID models.ID) ([]*Reservation, error)
	FindByRoomID(ctx context.Context, roomID models.ID) ([]*Reservation, error)
}
