package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reservation_booking_attempts_total",
		Help: "Create-reservation workflow attempts by terminal outcome.",
	}, []string{"outcome"})

	compensations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reservation_compensations_total",
		Help: "Compensating inventory calls by result.",
	}, []string{"compensation", "result"})

	reconciliationsRequired = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reservation_reconciliation_required_total",
		Help: "Failed compensations that left local and remote state diverged.",
	}, []string{"compensation"})
)
