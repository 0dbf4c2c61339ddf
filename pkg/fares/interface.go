package fares

import "context"

// IFares looks up the cheapest known fare to a destination.
// Implementations are safe for concurrent use.
type IFares interface {
	GetQuote(ctx context.Context, destination string) (Quote, error)
}
