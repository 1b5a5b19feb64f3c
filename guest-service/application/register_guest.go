package application

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/guest-service/domain"
)

// RegisterGuestCommand carries the data to register a new guest
type RegisterGuestCommand struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// RegisterGuest registers a new guest in the directory
type RegisterGuest struct {
	guestRepository domain.GuestRepository
}

// NewRegisterGuest creates a new RegisterGuest use case
func NewRegisterGuest(guestRepository domain.GuestRepository) *RegisterGuest {
	return &RegisterGuest{guestRepository: guestRepository}
}

// Execute executes the register-guest command
func (uc *RegisterGuest) Execute(ctx context.Context, cmd *RegisterGuestCommand) (*GuestResponse, error) {
	guest, err := domain.NewGuest(cmd.FullName, cmd.Email, cmd.Phone, cmd.Address)
	if err != nil {
		return nil, err
	}

	existing, err := uc.guestRepository.FindByEmail(ctx, strings.ToLower(cmd.Email))
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email")
	}
	if existing != nil {
		return nil, errors.Wrapf(domain.ErrEmailTaken, "email %q", guest.Email)
	}

	if err := uc.guestRepository.Save(ctx, guest); err != nil {
		return nil, errors.Wrap(err, "failed to save guest")
	}

	return newGuestResponse(guest), nil
}
