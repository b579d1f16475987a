package booking

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "booking_transitions_total",
		Help: "Total number of booking status transition attempts",
	},
	[]string{"action", "outcome"},
)
