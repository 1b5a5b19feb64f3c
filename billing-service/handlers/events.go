package handlers

import (
	"context"

	"github.com/rafifdzaky27/tubes-iae-pria/billing-service/application"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/events"
)

// BillingEventHandlers contains event handlers for billing service
type BillingEventHandlers struct {
	processCheckout *application.ProcessCheckout
}

// NewBillingEventHandlers creates new billing event handlers
func NewBillingEventHandlers(processCheckout *application.ProcessCheckout) *BillingEventHandlers {
	return &BillingEventHandlers{processCheckout: processCheckout}
}

// Handle implements the events.EventHandler interface
func (h *BillingEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	switch event.Topic {
	case events.ReservationCheckedOutTopic:
		return h.processCheckout.Execute(ctx, event)
	default:
		// Unknown topic, ignore
		return nil
	}
}
