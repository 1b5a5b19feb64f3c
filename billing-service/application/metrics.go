package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var billsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "billing_bills_generated_total",
	Help: "Bills generated, labeled by outcome.",
}, []string{"outcome"})
