package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/events"
)

// ProcessCheckout generates a bill when a reservation checks out. It is
// the billing side of the checkout flow: the reservation service emits
// the event, billing charges the stay. GenerateBill is idempotent, so a
// redelivered event settles on the already generated bill.
type ProcessCheckout struct {
	generateBill *GenerateBill
	logger       *slog.Logger
}

// NewProcessCheckout creates a new ProcessCheckout use case
func NewProcessCheckout(generateBill *GenerateBill, logger *slog.Logger) *ProcessCheckout {
	return &ProcessCheckout{
		generateBill: generateBill,
		logger:       logger,
	}
}

// Execute generates the bill for the checked-out reservation in the event
func (uc *ProcessCheckout) Execute(ctx context.Context, event *events.Event) error {
	var data events.ReservationEventData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to decode checkout event")
	}
	if data.ReservationID == 0 {
		return errors.New("checkout event without reservation id")
	}

	uc.logger.Info("processing checkout",
		slog.Int64("reservation_id", data.ReservationID),
		slog.String("event_id", event.ID),
	)

	_, err := uc.generateBill.Execute(ctx, &GenerateBillCommand{ReservationID: data.ReservationID})
	if err != nil {
		return errors.Wrapf(err, "failed to bill reservation %d", data.ReservationID)
	}

	return nil
}
