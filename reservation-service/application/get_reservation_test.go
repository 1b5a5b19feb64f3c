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
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/remote"
)

func TestGetReservation_Execute(t *testing.T) {
	guest := &domain.Guest{ID: models.ID(7), FullName: "Ana Pertiwi", Email: "ana@example.com"}
	room := availableRoomSnapshot(models.ID(42))

	t.Run("fully enriched", func(t *testing.T) {
		repo := &mocks.MockReservationRepository{}
		inventory := &mocks.MockInventoryGateway{}
		directory := &mocks.MockDirectoryGateway{}

		repo.On("FindByID", mock.Anything, models.ID(99)).Return(storedReservation(), nil).Once()
		directory.On("GetGuest", mock.Anything, models.ID(7)).Return(guest, nil).Once()
		inventory.On("GetRoom", mock.Anything, models.ID(42)).Return(room, nil).Once()

		uc := NewGetReservation(repo, inventory, directory, testLogger())
		result, err := uc.Execute(context.Background(), &GetReservationQuery{ReservationID: 99})

		require.NoError(t, err)
		assert.Equal(t, int64(99), result.ID)
		assert.Equal(t, guest, result.Guest)
		assert.Equal(t, room, result.Room)
		assert.Equal(t, 3, result.Nights)
	})

	t.Run("degraded when one upstream is down", func(t *testing.T) {
		repo := &mocks.MockReservationRepository{}
		inventory := &mocks.MockInventoryGateway{}
		directory := &mocks.MockDirectoryGateway{}

		repo.On("FindByID", mock.Anything, models.ID(99)).Return(storedReservation(), nil).Once()
		directory.On("GetGuest", mock.Anything, models.ID(7)).
			Return(nil, errors.Wrap(remote.ErrUnreachable, "directory down")).Once()
		inventory.On("GetRoom", mock.Anything, models.ID(42)).Return(room, nil).Once()

		uc := NewGetReservation(repo, inventory, directory, testLogger())
		result, err := uc.Execute(context.Background(), &GetReservationQuery{ReservationID: 99})

		// A failed snapshot degrades the response, it never fails it.
		require.NoError(t, err)
		assert.Nil(t, result.Guest)
		assert.Equal(t, room, result.Room)
	})

	t.Run("degraded when both upstreams are down", func(t *testing.T) {
		repo := &mocks.MockReservationRepository{}
		inventory := &mocks.MockInventoryGateway{}
		directory := &mocks.MockDirectoryGateway{}

		repo.On("FindByID", mock.Anything, models.ID(99)).Return(storedReservation(), nil).Once()
		directory.On("GetGuest", mock.Anything, models.ID(7)).
			Return(nil, errors.Wrap(remote.ErrUnreachable, "directory down")).Once()
		inventory.On("GetRoom", mock.Anything, models.ID(42)).
			Return(nil, errors.Wrap(remote.ErrUnreachable, "inventory down")).Once()

		uc := NewGetReservation(repo, inventory, directory, testLogger())
		result, err := uc.Execute(context.Background(), &GetReservationQuery{ReservationID: 99})

		require.NoError(t, err)
		assert.Nil(t, result.Guest)
		assert.Nil(t, result.Room)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		repo := &mocks.MockReservationRepository{}
		repo.On("FindByID", mock.Anything, models.ID(404)).Return(nil, nil).Once()

		uc := NewGetReservation(repo, &mocks.MockInventoryGateway{}, &mocks.MockDirectoryGateway{}, testLogger())
		result, err := uc.Execute(context.Background(), &GetReservationQuery{ReservationID: 404})

		assert.ErrorIs(t, err, domain.ErrReservationNotFound)
		assert.Nil(t, result)
	})
}

func TestListReservations_Execute(t *testing.T) {
	t.Run("guest filter takes precedence", func(t *testing.T) {
		repo := &mocks.MockReservationRepository{}
		repo.On("FindByGuestID", mock.Anything, models.ID(7)).
			Return([]*domain.Reservation{storedReservation()}, nil).Once()

		uc := NewListReservations(repo)
		guestID := int64(7)
		roomID := int64(42)
		result, err := uc.Execute(context.Background(), &ListReservationsQuery{GuestID: &guestID, RoomID: &roomID})

		require.NoError(t, err)
		assert.Len(t, result, 1)
		repo.AssertNotCalled(t, "FindByRoomID", mock.Anything, mock.Anything)
	})

	t.Run("no filter lists everything", func(t *testing.T) {
		repo := &mocks.MockReservationRepository{}
		repo.On("FindAll", mock.Anything).Return([]*domain.Reservation{}, nil).Once()

		uc := NewListReservations(repo)
		result, err := uc.Execute(context.Background(), &ListReservationsQuery{})

		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
