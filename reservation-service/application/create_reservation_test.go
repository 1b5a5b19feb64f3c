package application

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/mocks"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/events"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/remote"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateReservation_Execute(t *testing.T) {
	guestID := models.ID(7)
	roomID := models.ID(42)
	checkIn := models.NewDate(2026, time.September, 10)
	checkOut := models.NewDate(2026, time.September, 13)

	availableRoom := &domain.Room{
		ID:            roomID,
		Number:        "204",
		Type:          "double",
		PricePerNight: 120,
		Status:        domain.RoomStatusAvailable,
	}
	occupiedRoom := &domain.Room{
		ID:     roomID,
		Number: "204",
		Status: domain.RoomStatusOccupied,
	}
	guest := &domain.Guest{
		ID:       guestID,
		FullName: "Ana Pertiwi",
		Email:    "ana@example.com",
	}

	validCommand := &CreateReservationCommand{
		GuestID:      guestID.Int64(),
		RoomID:       roomID.Int64(),
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}

	tests := []struct {
		name           string
		command        *CreateReservationCommand
		setupMocks     func(*mocks.MockReservationRepository, *mocks.MockInventoryGateway, *mocks.MockDirectoryGateway, *mocks.MockReconciliationLog, *mocks.MockPublisher)
		expectedError  error
		validateResult func(*testing.T, *ReservationResponse)
	}{
		{
			name:    "successful booking with enrichment",
			command: validCommand,
			setupMocks: func(repo *mocks.MockReservationRepository, inventory *mocks.MockInventoryGateway, directory *mocks.MockDirectoryGateway, rec *mocks.MockReconciliationLog, publisher *mocks.MockPublisher) {
				inventory.On("GetRoom", mock.Anything, roomID).Return(availableRoom, nil)
				inventory.On("SetRoomStatus", mock.Anything, roomID, domain.RoomStatusReserved).Return(availableRoom, nil).Once()
				repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Reservation")).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Reservation).ID = models.ID(99)
				}).Return(nil).Once()
				directory.On("GetGuest", mock.Anything, guestID).Return(guest, nil).Once()
				publisher.On("Publish", mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.Topic == events.ReservationCreatedTopic
				})).Return(nil).Once()
			},
			validateResult: func(t *testing.T, result *ReservationResponse) {
				assert.Equal(t, int64(99), result.ID)
				assert.Equal(t, "confirmed", result.Status)
				assert.Equal(t, 3, result.Nights)
				assert.NotNil(t, result.Guest)
				assert.NotNil(t, result.Room)
			},
		},
		{
			name:    "degraded response when directory is down",
			command: validCommand,
			setupMocks: func(repo *mocks.MockReservationRepository, inventory *mocks.MockInventoryGateway, directory *mocks.MockDirectoryGateway, rec *mocks.MockReconciliationLog, publisher *mocks.MockPublisher) {
				inventory.On("GetRoom", mock.Anything, roomID).Return(availableRoom, nil)
				inventory.On("SetRoomStatus", mock.Anything, roomID, domain.RoomStatusReserved).Return(availableRoom, nil).Once()
				repo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
				directory.On("GetGuest", mock.Anything, guestID).Return(nil, errors.Wrap(remote.ErrUnreachable, "boom")).Once()
				publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
			},
			validateResult: func(t *testing.T, result *ReservationResponse) {
				assert.Nil(t, result.Guest)
				assert.NotNil(t, result.Room)
			},
		},
		{
			name:    "room does not exist",
			command: validCommand,
			setupMocks: func(repo *mocks.MockReservationRepository, inventory *mocks.MockInventoryGateway, directory *mocks.MockDirectoryGateway, rec *mocks.MockReconciliationLog, publisher *mocks.MockPublisher) {
				inventory.On("GetRoom", mock.Anything, roomID).Return(nil, nil).Once()
			},
			expectedError: domain.ErrRoomNotFound,
		},
		{
			name:    "room not available",
			command: validCommand,
			setupMocks: func(repo *mocks.MockReservationRepository, inventory *mocks.MockInventoryGateway, directory *mocks.MockDirectoryGateway, rec *mocks.MockReconciliationLog, publisher *mocks.MockPublisher) {
				inventory.On("GetRoom", mock.Anything, roomID).Return(occupiedRoom, nil).Once()
			},
			expectedError: domain.ErrRoomUnavailable,
		},
		{
			name:    "inventory unreachable during availability check",
			command: validCommand,
			setupMocks: func(repo *mocks.MockReservationRepository, inventory *mocks.MockInventoryGateway, directory *mocks.MockDirectoryGateway, rec *mocks.MockReconciliationLog, publisher *mocks.MockPublisher) {
				inventory.On("GetRoom", mock.Anything, roomID).Return(nil, errors.Wrap(remote.ErrUnreachable, "dial tcp")).Once()
			},
			expectedError: remote.ErrUnreachable,
		},
		{
			name:    "reserve call rejected",
			command: validCommand,
			setupMocks: func(repo *mocks.MockReservationRepository, inventory *mocks.MockInventoryGateway, directory *mocks.MockDirectoryGateway, rec *mocks.MockReconciliationLog, publisher *mocks.MockPublisher) {
				inventory.On("GetRoom", mock.Anything, roomID).Return(availableRoom, nil).Once()
				inventory.On("SetRoomStatus", mock.Anything, roomID, domain.RoomStatusReserved).Return(nil, errors.Wrap(remote.ErrRejected, "409")).Once()
			},
			expectedError: remote.ErrRejected,
		},
		{
			name:    "persist failure compensates the room lock",
			command: validCommand,
			setupMocks: func(repo *mocks.MockReservationRepository, inventory *mocks.MockInventoryGateway, directory *mocks.MockDirectoryGateway, rec *mocks.MockReconciliationLog, publisher *mocks.MockPublisher) {
				inventory.On("GetRoom", mock.Anything, roomID).Return(availableRoom, nil).Once()
				inventory.On("SetRoomStatus", mock.Anything, roomID, domain.RoomStatusReserved).Return(availableRoom, nil).Once()
				repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
				inventory.On("SetRoomStatus", mock.Anything, roomID, domain.RoomStatusAvailable).Return(availableRoom, nil).Once()
			},
			expectedError: errors.New("failed to persist reservation"),
		},
		{
			name:    "failed compensation escalates to reconciliation",
			command: validCommand,
			setupMocks: func(repo *mocks.MockReservationRepository, inventory *mocks.MockInventoryGateway, directory *mocks.MockDirectoryGateway, rec *mocks.MockReconciliationLog, publisher *mocks.MockPublisher) {
				inventory.On("GetRoom", mock.Anything, roomID).Return(availableRoom, nil).Once()
				inventory.On("SetRoomStatus", mock.Anything, roomID, domain.RoomStatusReserved).Return(availableRoom, nil).Once()
				repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
				inventory.On("SetRoomStatus", mock.Anything, roomID, domain.RoomStatusAvailable).Return(nil, errors.Wrap(remote.ErrUnreachable, "still down")).Once()
				rec.On("Record", mock.Anything, mock.MatchedBy(func(c domain.ReconciliationCandidate) bool {
					return c.RoomID == roomID && c.Compensation == "release_room"
				})).Return(nil).Once()
				publisher.On("Publish", mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.Topic == events.ReservationReconciliationRequiredTopic
				})).Return(nil).Once()
			},
			expectedError: errors.New("failed to persist reservation"),
		},
		{
			name: "check-out before check-in is rejected",
			command: &CreateReservationCommand{
				GuestID:      guestID.Int64(),
				RoomID:       roomID.Int64(),
				CheckInDate:  checkOut,
				CheckOutDate: checkIn,
			},
			setupMocks:    func(*mocks.MockReservationRepository, *mocks.MockInventoryGateway, *mocks.MockDirectoryGateway, *mocks.MockReconciliationLog, *mocks.MockPublisher) {},
			expectedError: domain.ErrInvalidStay,
		},
		{
			name: "unknown status is rejected",
			command: &CreateReservationCommand{
				GuestID:      guestID.Int64(),
				RoomID:       roomID.Int64(),
				CheckInDate:  checkIn,
				CheckOutDate: checkOut,
				Status:       "tentative",
			},
			setupMocks:    func(*mocks.MockReservationRepository, *mocks.MockInventoryGateway, *mocks.MockDirectoryGateway, *mocks.MockReconciliationLog, *mocks.MockPublisher) {},
			expectedError: domain.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.MockReservationRepository{}
			inventory := &mocks.MockInventoryGateway{}
			directory := &mocks.MockDirectoryGateway{}
			rec := &mocks.MockReconciliationLog{}
			publisher := &mocks.MockPublisher{}
			tt.setupMocks(repo, inventory, directory, rec, publisher)

			uc := NewCreateReservation(repo, inventory, directory, rec, publisher, testLogger())
			result, err := uc.Execute(context.Background(), tt.command)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, result)
				if sentinel := errors.Cause(tt.expectedError); sentinel == domain.ErrRoomNotFound ||
					sentinel == domain.ErrRoomUnavailable || sentinel == domain.ErrInvalidStay ||
					sentinel == domain.ErrInvalidStatus || sentinel == remote.ErrUnreachable ||
					sentinel == remote.ErrRejected {
					assert.ErrorIs(t, err, sentinel)
				}
			} else {
				assert.NoError(t, err)
				if tt.validateResult != nil {
					tt.validateResult(t, result)
				}
			}

			repo.AssertExpectations(t)
			inventory.AssertExpectations(t)
			directory.AssertExpectations(t)
			rec.AssertExpectations(t)
			publisher.AssertExpectations(t)
		})
	}
}
