package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flight-fulfillment/internal/fulfillment"
	"flight-fulfillment/internal/metrics"
	"flight-fulfillment/pkg/fares"
)

// flightInfo acknowledges, looks up the fare and renders it.
// Lookup failures become an apology instead of an empty reply.
func (uc *implUseCase) flightInfo(ctx context.Context, params fulfillment.Parameters, reply *fulfillment.Reply) {
	destination := params.String(fulfillment.ParamGeoCity)
	if destination == "" {
		uc.l.Infof(ctx, "%s: %s parameter missing", LogPrefixFlightInfo, fulfillment.ParamGeoCity)
		reply.Add(MsgAskDestination)
		return
	}

	reply.Add(pick(uc.picker, acknowledgements))

	start := time.Now()
	quote, err := uc.fares.GetQuote(ctx, destination)
	metrics.FareLookupDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, fares.ErrDestinationNotServed) {
			metrics.FareLookupsTotal.WithLabelValues(metrics.OutcomeNotServed).Inc()
			uc.l.Infof(ctx, "%s: destination=%q not served: %v", LogPrefixFlightInfo, destination, err)
			reply.Add(fmt.Sprintf(MsgNotServedFormat, destination))
			return
		}

		metrics.FareLookupsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		uc.l.Errorf(ctx, "%s: destination=%q fare lookup failed: %v", LogPrefixFlightInfo, destination, err)
		reply.Add(fmt.Sprintf(MsgLookupFailFormat, destination))
		return
	}

	fare := truncateFare(quote.Fare)
	if fare == "" {
		metrics.FareLookupsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		uc.l.Errorf(ctx, "%s: destination=%q unusable fare %q", LogPrefixFlightInfo, destination, quote.Fare)
		reply.Add(fmt.Sprintf(MsgLookupFailFormat, destination))
		return
	}

	metrics.FareLookupsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	uc.l.Debugf(ctx, "%s: destination=%q fare=%s airline=%s airport=%s",
		LogPrefixFlightInfo, destination, quote.Fare, quote.Airline, quote.AirportCode)

	render := pick(uc.picker, fareTemplates)
	reply.Add(render(destination, fare, quote.Airline))
}
