package ports

import (
	"context"

	"github.com/tendolkarurja/IPD/internal/domain"
)

// FeasibilityOracle must be side-effect free.
type FeasibilityOracle interface {
	Evaluate(ctx context.Context, ride domain.Ride, req domain.RiderRequest) (domain.Feasibility, error)
}
