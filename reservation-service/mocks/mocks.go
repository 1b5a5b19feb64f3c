// Package mocks provides hand-written testify mocks for the reservation
// service's ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/events"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// MockReservationRepository mocks domain.ReservationRepository
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Save(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) Update(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id models.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReservationRepository) FindByID(ctx context.Context, id models.ID) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindAll(ctx context.Context) ([]*domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindByGuestID(ctx context.Context, guestID models.ID) ([]*domain.Reservation, error) {
	args := m.Called(ctx, guestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindByRoomID(ctx context.Context, roomID models.ID) ([]*domain.Reservation, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

// MockInventoryGateway mocks domain.InventoryGateway
type MockInventoryGateway struct {
	mock.Mock
}

func (m *MockInventoryGateway) GetRoom(ctx context.Context, id models.ID) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockInventoryGateway) SetRoomStatus(ctx context.Context, id models.ID, status domain.RoomStatus) (*domain.Room, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockInventoryGateway) ListAvailableRooms(ctx context.Context) ([]*domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Room), args.Error(1)
}

// MockDirectoryGateway mocks domain.DirectoryGateway
type MockDirectoryGateway struct {
	mock.Mock
}

func (m *MockDirectoryGateway) GetGuest(ctx context.Context, id models.ID) (*domain.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

// MockReconciliationLog mocks domain.ReconciliationLog
type MockReconciliationLog struct {
	mock.Mock
}

func (m *MockReconciliationLog) Record(ctx context.Context, candidate domain.ReconciliationCandidate) error {
	args := m.Called(ctx, candidate)
	return args.Error(0)
}

func (m *MockReconciliationLog) FindPending(ctx context.Context, limit int) ([]domain.ReconciliationCandidate, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReconciliationCandidate), args.Error(1)
}

// MockPublisher mocks events.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, evts ...*events.Event) error {
	callArgs := make([]any, 0, len(evts)+1)
	callArgs = append(callArgs, ctx)
	for _, evt := range evts {
		callArgs = append(callArgs, evt)
	}
	args := m.Called(callArgs...)
	return args.Error(0)
}
