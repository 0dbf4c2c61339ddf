package fares

import "time"

const (
	DefaultBaseURL = "https://digital-flights.herokuapp.com"
	DefaultTimeout = 4 * time.Second

	DefaultBreakerMaxFailures = 5
	DefaultBreakerOpenTimeout = 30 * time.Second

	breakerName     = "fares"
	destinationPath = "/destination/"
)
