package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	reservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deal_reservations_total",
			Help: "Deal capacity reservation attempts by result.",
		},
		[]string{"result"},
	)

	quotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deal_quotes_total",
			Help: "Deal quote calculations by validity.",
		},
		[]string{"validity"},
	)
)

func observeReservation(result string) {
	reservationsTotal.WithLabelValues(result).Inc()
}

func observeQuote(valid bool) {
	label := "valid"
	if !valid {
		label = "invalid"
	}

	quotesTotal.WithLabelValues(label).Inc()
}
