package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/guest-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// DeleteGuestCommand identifies the guest to remove
type DeleteGuestCommand struct {
	GuestID int64
}

// DeleteGuest removes a guest from the directory
type DeleteGuest struct {
	guestRepository domain.GuestRepository
}

// NewDeleteGuest creates a new DeleteGuest use case
func NewDeleteGuest(guestRepository domain.GuestRepository) *DeleteGuest {
	return &DeleteGuest{guestRepository: guestRepository}
}

// Execute executes the delete-guest command
func (uc *DeleteGuest) Execute(ctx context.Context, cmd *DeleteGuestCommand) error {
	guest, err := uc.guestRepository.FindByID(ctx, models.ID(cmd.GuestID))
	if err != nil {
		return errors.Wrap(err, "failed to find guest")
	}
	if guest == nil {
		return errors.Wrapf(domain.ErrGuestNotFound, "guest %d", cmd.GuestID)
	}

	if err := uc.guestRepository.Delete(ctx, guest.ID); err != nil {
		return errors.Wrap(err, "failed to delete guest")
	}

	return nil
}
