package usecase

import (
	"context"

	"flight-fulfillment/internal/fulfillment"
	"flight-fulfillment/internal/metrics"
)

// Fulfill dispatches input to the handler registered for its intent.
func (uc *implUseCase) Fulfill(ctx context.Context, input fulfillment.FulfillInput) (fulfillment.FulfillOutput, error) {
	if err := ctx.Err(); err != nil {
		return fulfillment.FulfillOutput{}, err
	}

	reply := &fulfillment.Reply{}

	switch input.Intent {
	case fulfillment.IntentWelcome:
		uc.welcome(ctx, reply)
	case fulfillment.IntentFlightInfo:
		uc.flightInfo(ctx, input.Parameters, reply)
	case fulfillment.IntentFallback:
		uc.fallback(ctx, reply)
	default:
		uc.l.Warnf(ctx, "%s: unknown intent value %d, using fallback", LogPrefixFulfill, input.Intent)
		uc.fallback(ctx, reply)
	}

	metrics.FulfillmentsTotal.WithLabelValues(input.Intent.String()).Inc()
	uc.l.Infof(ctx, "%s: intent=%q handled as %q utterances=%d",
		LogPrefixFulfill, input.IntentName, input.Intent, reply.Len())

	return fulfillment.FulfillOutput{
		Intent:     input.Intent,
		Utterances: reply.Utterances(),
	}, nil
}

func (uc *implUseCase) welcome(_ context.Context, reply *fulfillment.Reply) {
	reply.Add(MsgWelcome)
}

func (uc *implUseCase) fallback(_ context.Context, reply *fulfillment.Reply) {
	reply.Add(MsgNotUnderstood, MsgTryAgain)
}
