package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/billing-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// GetBillQuery identifies the bill to fetch
type GetBillQuery struct {
	BillID int64
}

// GetBill fetches a bill and enriches it with a best-effort reservation
// snapshot. A missing snapshot degrades the response, it never fails it.
type GetBill struct {
	billRepository domain.BillRepository
	reservations   domain.ReservationGateway
	logger         *slog.Logger
}

// NewGetBill creates a new GetBill use case
func NewGetBill(
	billRepository domain.BillRepository,
	reservations domain.ReservationGateway,
	logger *slog.Logger,
) *GetBill {
	return &GetBill{
		billRepository: billRepository,
		reservations:   reservations,
		logger:         logger,
	}
}

// Execute executes the get-bill query
func (uc *GetBill) Execute(ctx context.Context, query *GetBillQuery) (*BillResponse, error) {
	bill, err := uc.billRepository.FindByID(ctx, models.ID(query.BillID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find bill")
	}
	if bill == nil {
		return nil, errors.Wrapf(domain.ErrBillNotFound, "bill %d", query.BillID)
	}

	response := newBillResponse(bill)

	reservation, err := uc.reservations.GetReservation(ctx, bill.ReservationID)
	if err != nil {
		uc.logger.Warn("reservation enrichment failed",
			slog.Int64("bill_id", query.BillID),
			slog.Int64("reservation_id", bill.ReservationID.Int64()),
			slog.String("error", err.Error()),
		)
	} else {
		response.Reservation = reservation
	}

	return response, nil
}
