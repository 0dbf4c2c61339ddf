package usecase

import (
	"math/rand/v2"
	"strings"
)

// Picker chooses an index in [0, n).
type Picker interface {
	IntN(n int) int
}

type randomPicker struct{}

func (randomPicker) IntN(n int) int { return rand.IntN(n) }

// pick returns one element of items using p. items must not be empty.
func pick[T any](p Picker, items []T) T {
	i := p.IntN(len(items))
	if i < 0 || i >= len(items) {
		i = 0
	}
	return items[i]
}

// truncateFare drops everything from the first '.' on: "199.99" -> "199".
func truncateFare(fare string) string {
	whole, _, _ := strings.Cut(fare, ".")
	return whole
}
