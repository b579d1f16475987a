package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var priceEstimatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "price_estimates_total",
		Help: "Total number of completed price estimations",
	},
	[]string{"category"},
)
