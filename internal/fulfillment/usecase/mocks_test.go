package usecase

import (
	"context"
	"sync"

	"flight-fulfillment/pkg/fares"
)

type mockFares struct {
	mu           sync.Mutex
	quote        fares.Quote
	err          error
	destinations []string
}

func (m *mockFares) GetQuote(ctx context.Context, destination string) (fares.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destinations = append(m.destinations, destination)
	return m.quote, m.err
}

func (m *mockFares) calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.destinations...)
}

// fixedPicker always returns idx.
type fixedPicker struct{ idx int }

func (p fixedPicker) IntN(n int) int { return p.idx % n }
