// Package mocks provides hand-written testify mocks for the guest
// service's ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rafifdzaky27/tubes-iae-pria/guest-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// MockGuestRepository mocks domain.GuestRepository
type MockGuestRepository struct {
	mock.Mock
}

func (m *MockGuestRepository) Save(ctx context.Context, guest *domain.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}

func (m *MockGuestRepository) Update(ctx context.Context, guest *domain.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}

func (m *MockGuestRepository) Delete(ctx context.Context, id models.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGuestRepository) FindByID(ctx context.Context, id models.ID) (*domain.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

func (m *MockGuestRepository) FindByEmail(ctx context.Context, email string) (*domain.Guest, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

func (m *MockGuestRepository) FindAll(ctx context.Context) ([]*domain.Guest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Guest), args.Error(1)
}
