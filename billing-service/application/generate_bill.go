package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/billing-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// GenerateBillCommand identifies the reservation to bill
type GenerateBillCommand struct {
	ReservationID int64 `json:"reservation_id"`
}

// GenerateBill creates the bill for a reservation's stay. The amount is
// the room's nightly rate times the number of nights, where a same-day
// stay still counts as one night. Generation is idempotent per
// reservation: a second request returns the existing bill unchanged.
type GenerateBill struct {
	billRepository domain.BillRepository
	reservations   domain.ReservationGateway
	logger         *slog.Logger
}

// NewGenerateBill creates a new GenerateBill use case
func NewGenerateBill(
	billRepository domain.BillRepository,
	reservations domain.ReservationGateway,
	logger *slog.Logger,
) *GenerateBill {
	return &GenerateBill{
		billRepository: billRepository,
		reservations:   reservations,
		logger:         logger,
	}
}

// Execute executes the generate-bill command
func (uc *GenerateBill) Execute(ctx context.Context, cmd *GenerateBillCommand) (*BillResponse, error) {
	reservationID := models.ID(cmd.ReservationID)

	existing, err := uc.billRepository.FindByReservationID(ctx, reservationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing bill")
	}
	if existing != nil {
		billsGenerated.WithLabelValues("duplicate").Inc()
		return newBillResponse(existing), nil
	}

	reservation, err := uc.reservations.GetReservation(ctx, reservationID)
	if err != nil {
		billsGenerated.WithLabelValues("unreachable").Inc()
		return nil, errors.Wrap(err, "failed to fetch reservation")
	}
	if reservation == nil {
		billsGenerated.WithLabelValues("not_found").Inc()
		return nil, errors.Wrapf(domain.ErrReservationNotFound, "reservation %s", reservationID)
	}
	if reservation.Room == nil {
		billsGenerated.WithLabelValues("no_rate").Inc()
		return nil, errors.Wrapf(domain.ErrRateUnavailable, "reservation %s", reservationID)
	}

	nights := models.Nights(reservation.CheckInDate, reservation.CheckOutDate)
	amount := float64(nights) * reservation.Room.PricePerNight

	bill, err := domain.NewBill(reservationID, amount)
	if err != nil {
		return nil, err
	}

	if err := uc.billRepository.Save(ctx, bill); err != nil {
		billsGenerated.WithLabelValues("save_failed").Inc()
		return nil, errors.Wrap(err, "failed to save bill")
	}

	billsGenerated.WithLabelValues("created").Inc()
	uc.logger.Info("bill generated",
		slog.Int64("bill_id", bill.ID.Int64()),
		slog.Int64("reservation_id", cmd.ReservationID),
		slog.Int("nights", nights),
		slog.Float64("total_amount", amount),
	)

	return newBillResponse(bill), nil
}
