package application

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/guest-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// UpdateGuestCommand carries a partial guest update. Nil fields are left
// unchanged.
type UpdateGuestCommand struct {
	GuestID  int64   `json:"-"`
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// UpdateGuest applies a partial update to a guest
type UpdateGuest struct {
	guestRepository domain.GuestRepository
}

// NewUpdateGuest creates a new UpdateGuest use case
func NewUpdateGuest(guestRepository domain.GuestRepository) *UpdateGuest {
	return &UpdateGuest{guestRepository: guestRepository}
}

// Execute executes the update-guest command
func (uc *UpdateGuest) Execute(ctx context.Context, cmd *UpdateGuestCommand) (*GuestResponse, error) {
	guest, err := uc.guestRepository.FindByID(ctx, models.ID(cmd.GuestID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find guest")
	}
	if guest == nil {
		return nil, errors.Wrapf(domain.ErrGuestNotFound, "guest %d", cmd.GuestID)
	}

	if cmd.FullName != nil {
		if *cmd.FullName == "" {
			return nil, errors.Wrap(domain.ErrInvalidGuest, "full_name is required")
		}
		guest.FullName = *cmd.FullName
	}
	if cmd.Email != nil {
		email := strings.ToLower(*cmd.Email)
		if email != guest.Email {
			existing, err := uc.guestRepository.FindByEmail(ctx, email)
			if err != nil {
				return nil, errors.Wrap(err, "failed to check email")
			}
			if existing != nil {
				return nil, errors.Wrapf(domain.ErrEmailTaken, "email %q", email)
			}
			guest.Email = email
		}
	}
	if cmd.Phone != nil {
		if *cmd.Phone == "" {
			return nil, errors.Wrap(domain.ErrInvalidGuest, "phone is required")
		}
		guest.Phone = *cmd.Phone
	}
	if cmd.Address != nil {
		guest.Address = *cmd.Address
	}
	guest.Timestamps = guest.Timestamps.Update()

	if err := uc.guestRepository.Update(ctx, guest); err != nil {
		return nil, errors.Wrap(err, "failed to update guest")
	}

	return newGuestResponse(guest), nil
}
