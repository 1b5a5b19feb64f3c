package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/guest-service/domain"
)

// ListGuests lists all registered guests
type ListGuests struct {
	guestRepository domain.GuestRepository
}

// NewListGuests creates a new ListGuests use case
func NewListGuests(guestRepository domain.GuestRepository) *ListGuests {
	return &ListGuests{guestRepository: guestRepository}
}

// Execute executes the list-guests query
func (uc *ListGuests) Execute(ctx context.Context) ([]*GuestResponse, error) {
	guests, err := uc.guestRepository.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guests")
	}

	responses := make([]*GuestResponse, len(guests))
	for i, guest := range guests {
		responses[i] = newGuestResponse(guest)
	}

	return responses, nil
}
