package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, ride_id, rider_id, seats_booked, status, created_at, updated_at`

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.RideID, &b.RiderID, &b.SeatsBooked, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

type BookingRepository struct {
	db       *dbpg.DB
	tx       txRunner
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB, strategy retry.Strategy) *BookingRepository {
	return &BookingRepository{
		db:       db,
		tx:       txRunner{db: db, strategy: strategy},
		strategy: strategy,
	}
}

// Reserve serializes on the ride row: the seat check, the decrement and the
// booking insert commit together or not at all.
func (r *BookingRepository) Reserve(ctx context.Context, b *domain.Booking) (*domain.Ride, error) {
	var ride *domain.Ride

	err := r.tx.run(ctx, func(tx *sql.Tx) error {
		var (
			status    domain.RideStatus
			available int
		)
		lockQuery := `SELECT status, available_seats FROM rides WHERE id = $1 FOR UPDATE`
		if err := tx.QueryRowContext(ctx, lockQuery, b.RideID).Scan(&status, &available); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrRideNotFound
			}
			return fmt.Errorf("lock ride: %w", err)
		}

		if status != domain.RideStatusScheduled {
			return domain.ErrRideNotBookable
		}
		if available < b.SeatsBooked {
			return &domain.InsufficientCapacityError{
				Requested: b.SeatsBooked,
				Remaining: available,
			}
		}

		var err error
		ride, err = scanRide(tx.QueryRowContext(ctx,
			`UPDATE rides
			 SET available_seats = available_seats - $2, updated_at = $3
			 WHERE id = $1
			 RETURNING `+rideColumns,
			b.RideID, b.SeatsBooked, time.Now().UTC(),
		))
		if err != nil {
			return fmt.Errorf("decrement seats: %w", err)
		}

		insert := `INSERT INTO bookings (` + bookingColumns + `)
				   VALUES ($1, $2, $3, $4, $5, $6, $7)`
		if _, err = tx.ExecContext(ctx, insert,
			b.ID, b.RideID, b.RiderID, b.SeatsBooked, b.Status, b.CreatedAt, b.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ride, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, bookingID, riderID string) (*domain.Booking, error) {
	var cancelled *domain.Booking

	err := r.tx.run(ctx, func(tx *sql.Tx) error {
		var rideID, owner string
		err := tx.QueryRowContext(ctx, `SELECT ride_id, rider_id FROM bookings WHERE id = $1`, bookingID).
			Scan(&rideID, &owner)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrBookingNotFound
			}
			return fmt.Errorf("get booking: %w", err)
		}
		if owner != riderID {
			return domain.ErrBookingNotFound
		}

		// ride first, then booking: same lock order as Reserve and Transition
		var rideStatus domain.RideStatus
		if err = tx.QueryRowContext(ctx, `SELECT status FROM rides WHERE id = $1 FOR UPDATE`, rideID).
			Scan(&rideStatus); err != nil {
			return fmt.Errorf("lock ride: %w", err)
		}

		b, err := scanBooking(tx.QueryRowContext(ctx,
			`SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, bookingID,
		))
		if err != nil {
			return fmt.Errorf("lock booking: %w", err)
		}
		if b.Status != domain.BookingStatusConfirmed {
			return domain.ErrBookingNotActive
		}
		if rideStatus != domain.RideStatusScheduled {
			return domain.ErrRideNotBookable
		}

		now := time.Now().UTC()
		cancelled, err = scanBooking(tx.QueryRowContext(ctx,
			`UPDATE bookings SET status = $2, updated_at = $3
			 WHERE id = $1
			 RETURNING `+bookingColumns,
			bookingID, domain.BookingStatusCancelled, now,
		))
		if err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}

		if _, err = tx.ExecContext(ctx,
			`UPDATE rides SET available_seats = available_seats + $2, updated_at = $3 WHERE id = $1`,
			rideID, b.SeatsBooked, now,
		); err != nil {
			return fmt.Errorf("release seats: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByRider(ctx context.Context, riderID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE rider_id = $1
              ORDER BY created_at DESC`

	return r.list(ctx, "list bookings by rider", query, riderID)
}

func (r *BookingRepository) ListByRide(ctx context.Context, rideID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE ride_id = $1 AND status = ANY($2)
              ORDER BY created_at`

	return r.list(ctx, "list bookings by ride", query, rideID, pq.Array(domain.ActiveStatuses))
}

func (r *BookingRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	res := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) HasCompleted(ctx context.Context, rideID, riderID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE ride_id = $1 AND rider_id = $2 AND status = $3
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, rideID, riderID, domain.BookingStatusCompleted)
	if err != nil {
		return false, fmt.Errorf("check completed booking: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan completed booking: %w", err)
	}

	return exists, nil
}
