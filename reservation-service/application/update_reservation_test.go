package application

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/mocks"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/events"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/remote"
)

func storedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:           models.ID(99),
		GuestID:      models.ID(7),
		RoomID:       models.ID(42),
		CheckInDate:  models.NewDate(2026, time.September, 10),
		CheckOutDate: models.NewDate(2026, time.September, 13),
		Status:       domain.ReservationStatusConfirmed,
		Timestamps:   models.NewTimestamps(),
	}
}

func availableRoomSnapshot(id models.ID) *domain.Room {
	return &domain.Room{ID: id, Number: "310", Status: domain.RoomStatusAvailable}
}

func TestUpdateReservation_RoomMoveOrdering(t *testing.T) {
	oldRoomID := models.ID(42)
	newRoomID := models.ID(55)

	repo := &mocks.MockReservationRepository{}
	inventory := &mocks.MockInventoryGateway{}
	directory := &mocks.MockDirectoryGateway{}
	rec := &mocks.MockReconciliationLog{}
	publisher := &mocks.MockPublisher{}

	var calls []string
	record := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) { calls = append(calls, name) }
	}

	repo.On("FindByID", mock.Anything, models.ID(99)).Return(storedReservation(), nil).Once()
	inventory.On("GetRoom", mock.Anything, newRoomID).Return(availableRoomSnapshot(newRoomID), nil)
	inventory.On("SetRoomStatus", mock.Anything, newRoomID, domain.RoomStatusReserved).
		Run(record("reserve_new")).Return(availableRoomSnapshot(newRoomID), nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Reservation")).
		Run(record("persist")).Return(nil).Once()
	inventory.On("SetRoomStatus", mock.Anything, oldRoomID, domain.RoomStatusAvailable).
		Run(record("release_old")).Return(availableRoomSnapshot(oldRoomID), nil).Once()
	directory.On("GetGuest", mock.Anything, models.ID(7)).Return(nil, nil).Once()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
		return evt.Topic == events.ReservationUpdatedTopic
	})).Return(nil).Once()

	uc := NewUpdateReservation(repo, inventory, directory, rec, publisher, testLogger())
	newRoom := newRoomID.Int64()
	result, err := uc.Execute(context.Background(), &UpdateReservationCommand{
		ReservationID: 99,
		RoomID:        &newRoom,
	})

	require.NoError(t, err)
	assert.Equal(t, newRoom, result.RoomID)

	// The new room must be locked before anything else and the old room
	// released only after the persist.
	require.Equal(t, []string{"reserve_new", "persist", "release_old"}, calls)

	repo.AssertExpectations(t)
	inventory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateReservation_PersistFailureReleasesNewRoomOnly(t *testing.T) {
	oldRoomID := models.ID(42)
	newRoomID := models.ID(55)

	repo := &mocks.MockReservationRepository{}
	inventory := &mocks.MockInventoryGateway{}
	directory := &mocks.MockDirectoryGateway{}
	rec := &mocks.MockReconciliationLog{}
	publisher := &mocks.MockPublisher{}

	repo.On("FindByID", mock.Anything, models.ID(99)).Return(storedReservation(), nil).Once()
	inventory.On("GetRoom", mock.Anything, newRoomID).Return(availableRoomSnapshot(newRoomID), nil).Once()
	inventory.On("SetRoomStatus", mock.Anything, newRoomID, domain.RoomStatusReserved).Return(availableRoomSnapshot(newRoomID), nil).Once()
	repo.On("Update", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
	// Compensation targets the new room; the old room keeps its lock.
	inventory.On("SetRoomStatus", mock.Anything, newRoomID, domain.RoomStatusAvailable).Return(availableRoomSnapshot(newRoomID), nil).Once()

	uc := NewUpdateReservation(repo, inventory, directory, rec, publisher, testLogger())
	newRoom := newRoomID.Int64()
	result, err := uc.Execute(context.Background(), &UpdateReservationCommand{
		ReservationID: 99,
		RoomID:        &newRoom,
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	inventory.AssertNotCalled(t, "SetRoomStatus", mock.Anything, oldRoomID, domain.RoomStatusAvailable)
	inventory.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUpdateReservation_NewRoomUnavailable(t *testing.T) {
	newRoomID := models.ID(55)

	repo := &mocks.MockReservationRepository{}
	inventory := &mocks.MockInventoryGateway{}
	directory := &mocks.MockDirectoryGateway{}
	rec := &mocks.MockReconciliationLog{}
	publisher := &mocks.MockPublisher{}

	repo.On("FindByID", mock.Anything, models.ID(99)).Return(storedReservation(), nil).Once()
	inventory.On("GetRoom", mock.Anything, newRoomID).
		Return(&domain.Room{ID: newRoomID, Status: domain.RoomStatusMaintenance}, nil).Once()

	uc := NewUpdateReservation(repo, inventory, directory, rec, publisher, testLogger())
	newRoom := newRoomID.Int64()
	_, err := uc.Execute(context.Background(), &UpdateReservationCommand{
		ReservationID: 99,
		RoomID:        &newRoom,
	})

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
	inventory.AssertNotCalled(t, "SetRoomStatus", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateReservation_CheckoutReleasesRoomAndPublishes(t *testing.T) {
	roomID := models.ID(42)

	repo := &mocks.MockReservationRepository{}
	inventory := &mocks.MockInventoryGateway{}
	directory := &mocks.MockDirectoryGateway{}
	rec := &mocks.MockReconciliationLog{}
	publisher := &mocks.MockPublisher{}

	repo.On("FindByID", mock.Anything, models.ID(99)).Return(storedReservation(), nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.Status == domain.ReservationStatusCheckedOut
	})).Return(nil).Once()
	inventory.On("SetRoomStatus", mock.Anything, roomID, domain.RoomStatusAvailable).Return(availableRoomSnapshot(roomID), nil).Once()
	inventory.On("GetRoom", mock.Anything, roomID).Return(availableRoomSnapshot(roomID), nil).Once()
	directory.On("GetGuest", mock.Anything, models.ID(7)).Return(nil, nil).Once()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
		return evt.Topic == events.ReservationUpdatedTopic
	})).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
		return evt.Topic == events.ReservationCheckedOutTopic
	})).Return(nil).Once()

	uc := NewUpdateReservation(repo, inventory, directory, rec, publisher, testLogger())
	status := string(domain.ReservationStatusCheckedOut)
	result, err := uc.Execute(context.Background(), &UpdateReservationCommand{
		ReservationID: 99,
		Status:        &status,
	})

	require.NoError(t, err)
	assert.Equal(t, "checked-out", result.Status)
	publisher.AssertExpectations(t)
	inventory.AssertExpectations(t)
}

func TestUpdateReservation_CheckoutStatusWinsOverReleaseFailure(t *testing.T) {
	roomID := models.ID(42)

	repo := &mocks.MockReservationRepository{}
	inventory := &mocks.MockInventoryGateway{}
	directory := &mocks.MockDirectoryGateway{}
	rec := &mocks.MockReconciliationLog{}
	publisher := &mocks.MockPublisher{}

	repo.On("FindByID", mock.Anything, models.ID(99)).Return(storedReservation(), nil).Once()
	repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
	inventory.On("SetRoomStatus", mock.Anything, roomID, domain.RoomStatusAvailable).
		Return(nil, errors.Wrap(remote.ErrUnreachable, "inventory down")).Once()
	rec.On("Record", mock.Anything, mock.MatchedBy(func(c domain.ReconciliationCandidate) bool {
		return c.Compensation == "release_room_checkout" && c.RoomID == roomID
	})).Return(nil).Once()
	inventory.On("GetRoom", mock.Anything, roomID).Return(nil, errors.Wrap(remote.ErrUnreachable, "inventory down")).Once()
	directory.On("GetGuest", mock.Anything, models.ID(7)).Return(nil, nil).Once()
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	uc := NewUpdateReservation(repo, inventory, directory, rec, publisher, testLogger())
	status := string(domain.ReservationStatusCheckedOut)
	result, err := uc.Execute(context.Background(), &UpdateReservationCommand{
		ReservationID: 99,
		Status:        &status,
	})

	// The checked-out status is durable even though the room release failed.
	require.NoError(t, err)
	assert.Equal(t, "checked-out", result.Status)
	rec.AssertExpectations(t)
}

func TestUpdateReservation_NotFound(t *testing.T) {
	repo := &mocks.MockReservationRepository{}
	repo.On("FindByID", mock.Anything, models.ID(404)).Return(nil, nil).Once()

	uc := NewUpdateReservation(repo, &mocks.MockInventoryGateway{}, &mocks.MockDirectoryGateway{},
		&mocks.MockReconciliationLog{}, &mocks.MockPublisher{}, testLogger())
	_, err := uc.Execute(context.Background(), &UpdateReservationCommand{ReservationID: 404})

	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestUpdateReservation_InvalidStayRollsBackRoomMove(t *testing.T) {
	oldRoomID := models.ID(42)
	newRoomID := models.ID(55)

	repo := &mocks.MockReservationRepository{}
	inventory := &mocks.MockInventoryGateway{}
	directory := &mocks.MockDirectoryGateway{}
	rec := &mocks.MockReconciliationLog{}
	publisher := &mocks.MockPublisher{}

	repo.On("FindByID", mock.Anything, models.ID(99)).Return(storedReservation(), nil).Once()
	inventory.On("GetRoom", mock.Anything, newRoomID).Return(availableRoomSnapshot(newRoomID), nil).Once()
	inventory.On("SetRoomStatus", mock.Anything, newRoomID, domain.RoomStatusReserved).Return(availableRoomSnapshot(newRoomID), nil).Once()
	inventory.On("SetRoomStatus", mock.Anything, newRoomID, domain.RoomStatusAvailable).Return(availableRoomSnapshot(newRoomID), nil).Once()

	uc := NewUpdateReservation(repo, inventory, directory, rec, publisher, testLogger())
	newRoom := newRoomID.Int64()
	badCheckIn := models.NewDate(2026, time.September, 20)
	badCheckOut := models.NewDate(2026, time.September, 15)
	_, err := uc.Execute(context.Background(), &UpdateReservationCommand{
		ReservationID: 99,
		RoomID:        &newRoom,
		CheckInDate:   &badCheckIn,
		CheckOutDate:  &badCheckOut,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidStay)
	inventory.AssertNotCalled(t, "SetRoomStatus", mock.Anything, oldRoomID, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	inventory.AssertExpectations(t)
}
