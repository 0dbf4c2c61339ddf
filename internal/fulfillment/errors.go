package fulfillment

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid fulfillment request")
)
