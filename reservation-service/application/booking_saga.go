package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// bookingState is the state of a single reservation-creation attempt. There
// is no shared transaction across the collaborating services, so the states
// mark the safe checkpoints between remote calls.
type bookingState string

const (
	stateCheckingAvailability bookingState = "checking_availability"
	stateReservingRoom        bookingState = "reserving_room"
	statePersisting           bookingState = "persisting"
	stateEnriching            bookingState = "enriching"
	stateDone                 bookingState = "done"
	stateCompensating         bookingState = "compensating"
	stateFailed               bookingState = "failed"
)

type bookingStep struct {
	State bookingState
	At    time.Time
	Err   error
}

// bookingExecution tracks one pass through the create-reservation workflow
type bookingExecution struct {
	ID        string
	GuestID   models.ID
	RoomID    models.ID
	State     bookingState
	Steps     []bookingStep
	StartedAt time.Time
}

func newBookingExecution(guestID, roomID models.ID) *bookingExecution {
	exec := &bookingExecution{
		ID:        uuid.New().String(),
		GuestID:   guestID,
		RoomID:    roomID,
		StartedAt: time.Now(),
	}
	exec.advance(stateCheckingAvailability)
	return exec
}

func (e *bookingExecution) advance(state bookingState) {
	e.State = state
	e.Steps = append(e.Steps, bookingStep{State: state, At: time.Now()})
}

func (e *bookingExecution) fail(err error) {
	e.State = stateFailed
	e.Steps = append(e.Steps, bookingStep{State: stateFailed, At: time.Now(), Err: err})
}
