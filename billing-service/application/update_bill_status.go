package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/billing-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// UpdateBillStatusCommand transitions a bill to a new payment status
type UpdateBillStatusCommand struct {
	BillID        int64  `json:"-"`
	PaymentStatus string `json:"payment_status"`
}

// UpdateBillStatus transitions a bill's payment status
type UpdateBillStatus struct {
	billRepository domain.BillRepository
	logger         *slog.Logger
}

// NewUpdateBillStatus creates a new UpdateBillStatus use case
func NewUpdateBillStatus(billRepository domain.BillRepository, logger *slog.Logger) *UpdateBillStatus {
	return &UpdateBillStatus{
		billRepository: billRepository,
		logger:         logger,
	}
}

// Execute executes the update-bill-status command
func (uc *UpdateBillStatus) Execute(ctx context.Context, cmd *UpdateBillStatusCommand) (*BillResponse, error) {
	status, err := domain.NewPaymentStatus(cmd.PaymentStatus)
	if err != nil {
		return nil, err
	}

	bill, err := uc.billRepository.FindByID(ctx, models.ID(cmd.BillID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find bill")
	}
	if bill == nil {
		return nil, errors.Wrapf(domain.ErrBillNotFound, "bill %d", cmd.BillID)
	}

	previous := bill.PaymentStatus
	bill.SetPaymentStatus(status)

	if err := uc.billRepository.Update(ctx, bill); err != nil {
		return nil, errors.Wrap(err, "failed to update bill")
	}

	uc.logger.Info("bill payment status changed",
		slog.Int64("bill_id", cmd.BillID),
		slog.String("from", string(previous)),
		slog.String("to", string(status)),
	)

	return newBillResponse(bill), nil
}
