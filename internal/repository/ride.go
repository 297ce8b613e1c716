package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const rideColumns = `id, driver_id, departure_time,
	origin_name, origin_address, origin_lat, origin_lng,
	destination_name, destination_address, destination_lat, destination_lng,
	price_per_seat, total_seats, available_seats, status, created_at, updated_at`

func scanRide(row rowScanner, extra ...any) (*domain.Ride, error) {
	var r domain.Ride
	dest := []any{
		&r.ID, &r.DriverID, &r.DepartureTime,
		&r.Origin.Name, &r.Origin.Address, &r.Origin.Point.Lat, &r.Origin.Point.Lng,
		&r.Destination.Name, &r.Destination.Address, &r.Destination.Point.Lat, &r.Destination.Point.Lng,
		&r.PricePerSeat, &r.TotalSeats, &r.AvailableSeats, &r.Status, &r.CreatedAt, &r.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	r.DepartureTime = r.DepartureTime.UTC()
	return &r, nil
}

type RideRepository struct {
	db       *dbpg.DB
	tx       txRunner
	strategy retry.Strategy
}

func NewRideRepo(db *dbpg.DB, strategy retry.Strategy) *RideRepository {
	return &RideRepository{
		db:       db,
		tx:       txRunner{db: db, strategy: strategy},
		strategy: strategy,
	}
}

func (r *RideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	query := `INSERT INTO rides (` + rideColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.ExecContext(
		ctx, query,
		ride.ID, ride.DriverID, ride.DepartureTime,
		ride.Origin.Name, ride.Origin.Address, ride.Origin.Point.Lat, ride.Origin.Point.Lng,
		ride.Destination.Name, ride.Destination.Address, ride.Destination.Point.Lat, ride.Destination.Point.Lng,
		ride.PricePerSeat, ride.TotalSeats, ride.AvailableSeats, ride.Status, ride.CreatedAt, ride.UpdatedAt,
	)
	if err != nil {
		if isTransient(err) {
			return fmt.Errorf("%w: insert ride: %v", domain.ErrTransientStore, err)
		}
		return fmt.Errorf("insert ride: %w", err)
	}

	return nil
}

func (r *RideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ride: %w", err)
	}

	ride, err := scanRide(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRideNotFound
		}
		return nil, fmt.Errorf("scan ride: %w", err)
	}

	return ride, nil
}

func (r *RideRepository) Transition(ctx context.Context, id string, to domain.RideStatus) (*domain.Ride, error) {
	var ride *domain.Ride

	err := r.tx.run(ctx, func(tx *sql.Tx) error {
		var current domain.RideStatus
		err := tx.QueryRowContext(ctx, `SELECT status FROM rides WHERE id = $1 FOR UPDATE`, id).Scan(&current)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrRideNotFound
			}
			return fmt.Errorf("lock ride: %w", err)
		}

		if !current.CanTransitionTo(to) {
			return domain.ErrInvalidTransition
		}

		ride, err = applyTransition(ctx, tx, id, to, time.Now().UTC())
		return err
	})
	if err != nil {
		return nil, err
	}

	return ride, nil
}

// RetireStale cancels overdue SCHEDULED rides. Rows locked by an in-flight
// reservation are skipped and picked up by a later sweep.
func (r *RideRepository) RetireStale(ctx context.Context, departedBefore time.Time) ([]*domain.Ride, error) {
	var retired []*domain.Ride

	err := r.tx.run(ctx, func(tx *sql.Tx) error {
		retired = retired[:0]

		rows, err := tx.QueryContext(ctx,
			`SELECT id FROM rides
			 WHERE status = $1 AND departure_time < $2
			 FOR UPDATE SKIP LOCKED`,
			domain.RideStatusScheduled, departedBefore,
		)
		if err != nil {
			return fmt.Errorf("select stale rides: %w", err)
		}

		var ids []string
		for rows.Next() {
			var id string
			if err = rows.Scan(&id); err != nil {
				rows.Close()
				return fmt.Errorf("scan stale ride: %w", err)
			}
			ids = append(ids, id)
		}
		rows.Close()
		if err = rows.Err(); err != nil {
			return fmt.Errorf("iterate stale rides: %w", err)
		}

		now := time.Now().UTC()
		for _, id := range ids {
			ride, err := applyTransition(ctx, tx, id, domain.RideStatusCancelled, now)
			if err != nil {
				return err
			}
			retired = append(retired, ride)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return retired, nil
}

// applyTransition expects the ride row to be locked by tx. Completing a ride
// completes its CONFIRMED bookings; cancelling one releases their seats.
func applyTransition(ctx context.Context, tx *sql.Tx, id string, to domain.RideStatus, now time.Time) (*domain.Ride, error) {
	released := 0

	switch to {
	case domain.RideStatusCompleted:
		_, err := tx.ExecContext(ctx,
			`UPDATE bookings SET status = $2, updated_at = $3
			 WHERE ride_id = $1 AND status = $4`,
			id, domain.BookingStatusCompleted, now, domain.BookingStatusConfirmed,
		)
		if err != nil {
			return nil, fmt.Errorf("complete bookings: %w", err)
		}
	case domain.RideStatusCancelled:
		err := tx.QueryRowContext(ctx,
			`WITH cancelled AS (
				UPDATE bookings SET status = $2, updated_at = $3
				WHERE ride_id = $1 AND status = $4
				RETURNING seats_booked
			 )
			 SELECT COALESCE(SUM(seats_booked), 0) FROM cancelled`,
			id, domain.BookingStatusCancelled, now, domain.BookingStatusConfirmed,
		).Scan(&released)
		if err != nil {
			return nil, fmt.Errorf("cancel bookings: %w", err)
		}
	}

	ride, err := scanRide(tx.QueryRowContext(ctx,
		`UPDATE rides
		 SET status = $2, available_seats = available_seats + $3, updated_at = $4
		 WHERE id = $1
		 RETURNING `+rideColumns,
		id, to, released, now,
	))
	if err != nil {
		return nil, fmt.Errorf("update ride status: %w", err)
	}

	return ride, nil
}
