package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/guest-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// GetGuestQuery identifies the guest to fetch
type GetGuestQuery struct {
	GuestID int64
}

// GetGuest fetches a single guest
type GetGuest struct {
	guestRepository domain.GuestRepository
}

// NewGetGuest creates a new GetGuest use case
func NewGetGuest(guestRepository domain.GuestRepository) *GetGuest {
	return &GetGuest{guestRepository: guestRepository}
}

// Execute executes the get-guest query
func (uc *GetGuest) Execute(ctx context.Context, query *GetGuestQuery) (*GuestResponse, error) {
	guest, err := uc.guestRepository.FindByID(ctx, models.ID(query.GuestID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find guest")
	}
	if guest == nil {
		return nil, errors.Wrapf(domain.ErrGuestNotFound, "guest %d", query.GuestID)
	}

	return newGuestResponse(guest), nil
}
