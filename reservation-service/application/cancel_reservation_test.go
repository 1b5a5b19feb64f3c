package application

import (
	"context"
	"testing"

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

func TestCancelReservation_Execute(t *testing.T) {
	roomID := models.ID(42)

	t.Run("releases room then deletes", func(t *testing.T) {
		repo := &mocks.MockReservationRepository{}
		inventory := &mocks.MockInventoryGateway{}
		rec := &mocks.MockReconciliationLog{}
		publisher := &mocks.MockPublisher{}

		var calls []string
		repo.On("FindByID", mock.Anything, models.ID(99)).Return(storedReservation(), nil).Once()
		inventory.On("SetRoomStatus", mock.Anything, roomID, domain.RoomStatusAvailable).
			Run(func(mock.Arguments) { calls = append(calls, "release") }).
			Return(availableRoomSnapshot(roomID), nil).Once()
		repo.On("Delete", mock.Anything, models.ID(99)).
			Run(func(mock.Arguments) { calls = append(calls, "delete") }).
			Return(nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
			return evt.Topic == events.ReservationCancelledTopic
		})).Return(nil).Once()

		uc := NewCancelReservation(repo, inventory, rec, publisher, testLogger())
		err := uc.Execute(context.Background(), &CancelReservationCommand{ReservationID: 99})

		require.NoError(t, err)
		require.Equal(t, []string{"release", "delete"}, calls)
		repo.AssertExpectations(t)
		inventory.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("keeps reservation when release fails", func(t *testing.T) {
		repo := &mocks.MockReservationRepository{}
		inventory := &mocks.MockInventoryGateway{}
		rec := &mocks.MockReconciliationLog{}
		publisher := &mocks.MockPublisher{}

		repo.On("FindByID", mock.Anything, models.ID(99)).Return(storedReservation(), nil).Once()
		inventory.On("SetRoomStatus", mock.Anything, roomID, domain.RoomStatusAvailable).
			Return(nil, errors.Wrap(remote.ErrUnreachable, "inventory down")).Once()

		uc := NewCancelReservation(repo, inventory, rec, publisher, testLogger())
		err := uc.Execute(context.Background(), &CancelReservationCommand{ReservationID: 99})

		assert.ErrorIs(t, err, remote.ErrUnreachable)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("delete failure after release escalates", func(t *testing.T) {
		repo := &mocks.MockReservationRepository{}
		inventory := &mocks.MockInventoryGateway{}
		rec := &mocks.MockReconciliationLog{}
		publisher := &mocks.MockPublisher{}

		repo.On("FindByID", mock.Anything, models.ID(99)).Return(storedReservation(), nil).Once()
		inventory.On("SetRoomStatus", mock.Anything, roomID, domain.RoomStatusAvailable).
			Return(availableRoomSnapshot(roomID), nil).Once()
		repo.On("Delete", mock.Anything, models.ID(99)).Return(errors.New("db down")).Once()
		rec.On("Record", mock.Anything, mock.MatchedBy(func(c domain.ReconciliationCandidate) bool {
			return c.Compensation == "delete_reservation" && c.ReservationID == models.ID(99)
		})).Return(nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
			return evt.Topic == events.ReservationReconciliationRequiredTopic
		})).Return(nil).Once()

		uc := NewCancelReservation(repo, inventory, rec, publisher, testLogger())
		err := uc.Execute(context.Background(), &CancelReservationCommand{ReservationID: 99})

		assert.Error(t, err)
		rec.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		repo := &mocks.MockReservationRepository{}
		repo.On("FindByID", mock.Anything, models.ID(404)).Return(nil, nil).Once()

		uc := NewCancelReservation(repo, &mocks.MockInventoryGateway{}, &mocks.MockReconciliationLog{},
			&mocks.MockPublisher{}, testLogger())
		err := uc.Execute(context.Background(), &CancelReservationCommand{ReservationID: 404})

		assert.ErrorIs(t, err, domain.ErrReservationNotFound)
	})
}
