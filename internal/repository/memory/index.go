package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/tendolkarurja/IPD/internal/domain"
)

// GeoIndex scans every ride; fine for the data sizes this backend targets.
type GeoIndex struct {
	store *Store
}

func (g *GeoIndex) FindCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.Candidate, error) {
	var res []domain.Candidate

	g.store.rides.Range(func(_ string, slot *rideSlot) bool {
		if ctx.Err() != nil {
			return false
		}

		slot.mu.Lock()
		ride := slot.ride
		slot.mu.Unlock()

		if ride.Status != domain.RideStatusScheduled || ride.AvailableSeats < q.MinSeats {
			return true
		}
		if ride.DepartureTime.Before(q.From) || ride.DepartureTime.After(q.To) {
			return true
		}
		dist := domain.DistanceMeters(q.Origin, ride.Origin.Point)
		if dist > q.RadiusMeters {
			return true
		}

		res = append(res, domain.Candidate{Ride: ride, DistanceMeters: dist})
		return true
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(res, func(a, b domain.Candidate) int {
		return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
	})
	if q.Limit > 0 && len(res) > q.Limit {
		res = res[:q.Limit]
	}

	return res, nil
}
