package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomUnavailable     = errors.New("room not available")
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrInvalidStay         = errors.New("check-out date must not be before check-in date")
	ErrInvalidReference    = errors.New("invalid entity reference")
)

// ReconciliationError reports that a compensating call failed after a local
// and a remote record had already diverged. It must never be swallowed: the
// carrying workflow records a candidate for manual or automated
// reconciliation.
type ReconciliationError struct {
	ReservationID models.ID
	RoomID        models.ID
	Compensation  string
	Cause         error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("reconciliation required: compensation %q failed for reservation %s room %s: %v",
		e.Compensation, e.ReservationID, e.RoomID, e.Cause)
}

func (e *ReconciliationError) Unwrap() error {
	return e.Cause
}

// ReconciliationCandidate is a durable record of a state divergence between
// the reservation store and the inventory service.
type ReconciliationCandidate struct {
	ReservationID models.ID
	RoomID        models.ID
	Compensation  string
	Detail        string
	CreatedAt     time.Time
}

// NewReconciliationCandidate builds a candidate from a failed compensation
func NewReconciliationCandidate(reservationID, roomID models.ID, compensation string, cause error) ReconciliationCandidate {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return ReconciliationCandidate{
		ReservationID: reservationID,
		RoomID:        roomID,
		Compensation:  compensation,
		Detail:        detail,
		CreatedAt:     time.Now(),
	}
}

// ReconciliationLog records reconciliation candidates for later resolution
type ReconciliationLog interface {
	Record(ctx context.Context, candidate ReconciliationCandidate) error
	FindPending(ctx context.Context, limit int) ([]ReconciliationCandidate, error)
}
