// Package oracle contains FeasibilityOracle implementations used by the
// match engine. None of them call a road router; they work on great-circle
// distances only.
package oracle

import (
	"context"
	"fmt"
	"math"

	"github.com/tendolkarurja/IPD/internal/domain"
)

const (
	KindConstant = "constant"
	KindDetour   = "detour"
)

// Constant accepts every candidate at a fixed time cost.
type Constant struct {
	ExtraMinutes float64
}

func NewConstant(extraMinutes float64) *Constant {
	return &Constant{ExtraMinutes: extraMinutes}
}

func (o *Constant) Evaluate(ctx context.Context, _ domain.Ride, _ domain.RiderRequest) (domain.Feasibility, error) {
	if err := ctx.Err(); err != nil {
		return domain.Feasibility{}, err
	}
	return domain.Feasibility{Feasible: true, ExtraMinutes: o.ExtraMinutes}, nil
}

// Detour estimates the extra driving time of picking the rider up and
// dropping them off on the way, at a constant average speed.
type Detour struct {
	MaxExtraMinutes float64
	SpeedKmh        float64
}

func NewDetour(maxExtraMinutes, speedKmh float64) (*Detour, error) {
	if speedKmh <= 0 {
		return nil, fmt.Errorf("%w: average speed must be positive", domain.ErrValidation)
	}
	if maxExtraMinutes < 0 {
		return nil, fmt.Errorf("%w: max detour must not be negative", domain.ErrValidation)
	}
	return &Detour{MaxExtraMinutes: maxExtraMinutes, SpeedKmh: speedKmh}, nil
}

func (o *Detour) Evaluate(ctx context.Context, ride domain.Ride, req domain.RiderRequest) (domain.Feasibility, error) {
	if err := ctx.Err(); err != nil {
		return domain.Feasibility{}, err
	}

	from := ride.Origin.Point
	to := ride.Destination.Point

	direct := domain.DistanceMeters(from, to)
	withRider := domain.DistanceMeters(from, req.Origin) +
		domain.DistanceMeters(req.Origin, req.Destination) +
		domain.DistanceMeters(req.Destination, to)

	extraMeters := math.Max(0, withRider-direct)
	extraMinutes := math.Round(extraMeters/1000/o.SpeedKmh*60*10) / 10

	return domain.Feasibility{
		Feasible:     extraMinutes <= o.MaxExtraMinutes,
		ExtraMinutes: extraMinutes,
	}, nil
}
