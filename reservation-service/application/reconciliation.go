package application

import (
	"context"
	"log/slog"

	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/events"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// escalateReconciliation records a failed compensation: local and remote
// state have diverged and automatic repair is no longer possible. The
// candidate is logged at error severity, persisted for manual or automated
// reconciliation, counted, and broadcast.
func escalateReconciliation(
	ctx context.Context,
	log *slog.Logger,
	reconciliations domain.ReconciliationLog,
	publisher events.Publisher,
	reservationID, roomID models.ID,
	compensation string,
	cause error,
) {
	compensations.WithLabelValues(compensation, "failed").Inc()
	reconciliationsRequired.WithLabelValues(compensation).Inc()

	recErr := &domain.ReconciliationError{
		ReservationID: reservationID,
		RoomID:        roomID,
		Compensation:  compensation,
		Cause:         cause,
	}
	log.Error("compensation failed, reconciliation required",
		"reservation_id", reservationID.Int64(),
		"room_id", roomID.Int64(),
		"compensation", compensation,
		"error", cause,
	)

	candidate := domain.NewReconciliationCandidate(reservationID, roomID, compensation, cause)
	if err := reconciliations.Record(ctx, candidate); err != nil {
		log.Error("failed to record reconciliation candidate", "error", err)
	}

	publishEvent(ctx, log, publisher, events.NewEvent(reservationID, events.ReservationReconciliationRequiredTopic, events.ReconciliationRequiredData{
		ReservationID: reservationID.Int64(),
		RoomID:        roomID.Int64(),
		Compensation:  compensation,
		Detail:        recErr.Error(),
	}))
}

// publishEvent publishes best-effort: a failed publish never fails an
// otherwise committed workflow.
func publishEvent(ctx context.Context, log *slog.Logger, publisher events.Publisher, event *events.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn("failed to publish event", "topic", event.Topic.String(), "error", err)
	}
}

func reservationEventData(r *domain.Reservation) events.ReservationEventData {
	return events.ReservationEventData{
		ReservationID: r.ID.Int64(),
		GuestID:       r.GuestID.Int64(),
		RoomID:        r.RoomID.Int64(),
		CheckInDate:   r.CheckInDate,
		CheckOutDate:  r.CheckOutDate,
		Status:        string(r.Status),
		Nights:        r.Nights(),
	}
}
