package fares

import "errors"

var (
	ErrDestinationRequired  = errors.New("fares: destination is required")
	ErrDestinationNotServed = errors.New("fares: destination not served")
	ErrUnexpectedStatus     = errors.New("fares: unexpected status")
	ErrMalformedResponse    = errors.New("fares: malformed response")
	ErrUnavailable          = errors.New("fares: upstream unavailable")
)
