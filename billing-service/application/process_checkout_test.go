package application

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rafifdzaky27/tubes-iae-pria/billing-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/billing-service/mocks"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/events"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

func TestProcessCheckout_Execute(t *testing.T) {
	ctx := context.Background()

	checkoutEvent := func(data any) *events.Event {
		return events.NewEvent(models.ID(99), events.ReservationCheckedOutTopic, data)
	}

	t.Run("bills the checked-out reservation", func(t *testing.T) {
		billRepo := new(mocks.MockBillRepository)
		reservations := new(mocks.MockReservationGateway)

		billRepo.On("FindByReservationID", ctx, models.ID(99)).Return(nil, nil)
		reservations.On("GetReservation", ctx, models.ID(99)).Return(reservationSnapshot(), nil)
		billRepo.On("Save", ctx, mock.AnythingOfType("*domain.Bill")).Return(nil)

		uc := NewProcessCheckout(NewGenerateBill(billRepo, reservations, testLogger()), testLogger())
		err := uc.Execute(ctx, checkoutEvent(events.ReservationEventData{
			ReservationID: 99,
			GuestID:       7,
			RoomID:        42,
			CheckInDate:   models.NewDate(2026, time.September, 10),
			CheckOutDate:  models.NewDate(2026, time.September, 13),
			Status:        "checked-out",
			Nights:        3,
		}))

		require.NoError(t, err)
		billRepo.AssertExpectations(t)
	})

	t.Run("decodes a raw payload delivered off the queue", func(t *testing.T) {
		billRepo := new(mocks.MockBillRepository)
		reservations := new(mocks.MockReservationGateway)

		existing := &domain.Bill{ID: models.ID(5), ReservationID: models.ID(99), TotalAmount: 360}
		billRepo.On("FindByReservationID", ctx, models.ID(99)).Return(existing, nil)

		raw, err := json.Marshal(events.ReservationEventData{ReservationID: 99, Status: "checked-out"})
		require.NoError(t, err)

		uc := NewProcessCheckout(NewGenerateBill(billRepo, reservations, testLogger()), testLogger())
		err = uc.Execute(ctx, checkoutEvent(json.RawMessage(raw)))

		require.NoError(t, err)
		reservations.AssertNotCalled(t, "GetReservation", mock.Anything, mock.Anything)
	})

	t.Run("rejects an event without a reservation id", func(t *testing.T) {
		billRepo := new(mocks.MockBillRepository)
		reservations := new(mocks.MockReservationGateway)

		uc := NewProcessCheckout(NewGenerateBill(billRepo, reservations, testLogger()), testLogger())
		err := uc.Execute(ctx, checkoutEvent(map[string]any{"status": "checked-out"}))

		require.Error(t, err)
		billRepo.AssertNotCalled(t, "FindByReservationID", mock.Anything, mock.Anything)
	})
}
