package fulfillment

import "context"

// UseCase fulfills one matched intent per call.
type UseCase interface {
	// Fulfill runs exactly one intent handler and returns the utterances it produced.
	// Handler failures are turned into utterances; only a cancelled ctx yields an error.
	Fulfill(ctx context.Context, input FulfillInput) (FulfillOutput, error)
}
