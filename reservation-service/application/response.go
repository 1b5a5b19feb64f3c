package application

import (
	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// ReservationResponse is the canonical reservation representation returned
// by the orchestrator. Guest and Room are best-effort snapshots: either may
// be absent when its owning service could not be reached, without failing
// the response.
type ReservationResponse struct {
	ID           int64         `json:"id"`
	GuestID      int64         `json:"guest_id"`
	RoomID       int64         `json:"room_id"`
	CheckInDate  models.Date   `json:"check_in_date"`
	CheckOutDate models.Date   `json:"check_out_date"`
	Status       string        `json:"status"`
	Nights       int           `json:"nights"`
	Guest        *domain.Guest `json:"guest,omitempty"`
	Room         *domain.Room  `json:"room,omitempty"`
}

func newReservationResponse(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:           r.ID.Int64(),
		GuestID:      r.GuestID.Int64(),
		RoomID:       r.RoomID.Int64(),
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		Status:       string(r.Status),
		Nights:       r.Nights(),
	}
}
