package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// GeoIndex answers candidate queries with PostGIS on the sphere model,
// backed by the GIST index on the ride origin.
type GeoIndex struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGeoIndex(db *dbpg.DB, strategy retry.Strategy) *GeoIndex {
	return &GeoIndex{db: db, strategy: strategy}
}

func (g *GeoIndex) FindCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.Candidate, error) {
	query := `SELECT ` + rideColumns + `,
				ST_Distance(
					ST_MakePoint(origin_lng, origin_lat)::geography,
					ST_MakePoint($1, $2)::geography,
					false
				) AS distance_m
			  FROM rides
			  WHERE status = $3
			    AND available_seats >= $4
			    AND departure_time BETWEEN $5 AND $6
			    AND ST_DWithin(
					ST_MakePoint(origin_lng, origin_lat)::geography,
					ST_MakePoint($1, $2)::geography,
					$7,
					false
				)
			  ORDER BY distance_m, departure_time, id
			  LIMIT $8`

	limit := sql.NullInt64{Int64: int64(q.Limit), Valid: q.Limit > 0}

	rows, err := g.db.QueryWithRetry(
		ctx, g.strategy, query,
		q.Origin.Lng, q.Origin.Lat,
		domain.RideStatusScheduled, q.MinSeats,
		q.From.UTC(), q.To.UTC(),
		q.RadiusMeters, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}
	defer rows.Close()

	res := make([]domain.Candidate, 0)
	for rows.Next() {
		var dist float64
		ride, err := scanRide(rows, &dist)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		res = append(res, domain.Candidate{Ride: *ride, DistanceMeters: dist})
	}

	return res, rows.Err()
}
