package usecase

import (
	"flight-fulfillment/internal/fulfillment"
	"flight-fulfillment/pkg/fares"
	pkgLog "flight-fulfillment/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	fares  fares.IFares
	picker Picker
}

var _ fulfillment.UseCase = (*implUseCase)(nil)

// New creates a new fulfillment UseCase. A nil picker selects uniformly at random.
func New(l pkgLog.Logger, fareClient fares.IFares, picker Picker) *implUseCase {
	if picker == nil {
		picker = randomPicker{}
	}
	return &implUseCase{
		l:      l,
		fares:  fareClient,
		picker: picker,
	}
}
