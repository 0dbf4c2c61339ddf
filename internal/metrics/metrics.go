package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fare lookup outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeNotServed = "not_served"
	OutcomeError     = "error"
)

var (
	FulfillmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_requests_total",
			Help: "Total number of fulfillment requests by intent",
		},
		[]string{"intent"},
	)

	FareLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fare_lookups_total",
			Help: "Total number of fare API lookups by outcome",
		},
		[]string{"outcome"},
	)

	FareLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fare_lookup_duration_seconds",
			Help:    "Duration of fare API lookups in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"method", "route", "code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "route"},
	)
)
