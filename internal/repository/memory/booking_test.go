package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendolkarurja/IPD/internal/domain"
)

func seedRide(t *testing.T, s *Store, seats int, departure time.Time) *domain.Ride {
	t.Helper()
	ride, err := domain.NewRide(domain.PublishRideInput{
		DriverID:      "driver-1",
		DepartureTime: departure,
		Origin:        domain.Place{Name: "MG Road", Point: domain.Point{Lat: 12.97, Lng: 77.59}},
		Destination:   domain.Place{Name: "Airport", Point: domain.Point{Lat: 13.19, Lng: 77.70}},
		PricePerSeat:  150,
		TotalSeats:    seats,
	}, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Rides().Create(context.Background(), ride))
	return ride
}

func reserve(t *testing.T, s *Store, rideID, riderID string, seats int) (*domain.Booking, *domain.Ride, error) {
	t.Helper()
	b, err := domain.NewBooking(rideID, riderID, seats, time.Now())
	require.NoError(t, err)
	ride, err := s.Bookings().Reserve(context.Background(), b)
	return b, ride, err
}

func TestReserve_ExampleScenario(t *testing.T) {
	s := NewStore()
	ride := seedRide(t, s, 3, time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC))

	_, after, err := reserve(t, s, ride.ID, "rider-a", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, after.AvailableSeats)

	_, _, err = reserve(t, s, ride.ID, "rider-b", 2)
	require.ErrorIs(t, err, domain.ErrInsufficientCapacity)
	remaining, ok := domain.RemainingSeats(err)
	require.True(t, ok)
	assert.Equal(t, 1, remaining)

	_, after, err = reserve(t, s, ride.ID, "rider-c", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, after.AvailableSeats)
}

func TestReserve_NotFound(t *testing.T) {
	s := NewStore()

	_, _, err := reserve(t, s, "missing", "rider-a", 1)

	assert.ErrorIs(t, err, domain.ErrRideNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReserve_RideNotScheduled(t *testing.T) {
	s := NewStore()
	ride := seedRide(t, s, 3, time.Now().Add(time.Hour))
	_, err := s.Rides().Transition(context.Background(), ride.ID, domain.RideStatusInProgress)
	require.NoError(t, err)

	_, _, err = reserve(t, s, ride.ID, "rider-a", 1)

	assert.ErrorIs(t, err, domain.ErrRideNotBookable)
}

func TestReserve_ConcurrentNeverOversells(t *testing.T) {
	const (
		totalSeats = 7
		callers    = 64
	)
	s := NewStore()
	ride := seedRide(t, s, totalSeats, time.Now().Add(time.Hour))

	var (
		wg        sync.WaitGroup
		committed atomic.Int64
		rejected  atomic.Int64
		start     = make(chan struct{})
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			seats := i%3 + 1
			b, err := domain.NewBooking(ride.ID, "rider", seats, time.Now())
			if err != nil {
				t.Error(err)
				return
			}
			_, err = s.Bookings().Reserve(context.Background(), b)
			switch {
			case err == nil:
				committed.Add(int64(seats))
			case errors.Is(err, domain.ErrInsufficientCapacity):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	got, err := s.Rides().GetByID(context.Background(), ride.ID)
	require.NoError(t, err)

	bookings, err := s.Bookings().ListByRide(context.Background(), ride.ID)
	require.NoError(t, err)
	sum := 0
	for _, b := range bookings {
		sum += b.SeatsBooked
	}

	assert.LessOrEqual(t, sum, totalSeats)
	assert.Equal(t, int64(sum), committed.Load())
	assert.Equal(t, totalSeats-sum, got.AvailableSeats)
	assert.Positive(t, rejected.Load())
}

func TestReserve_RejectedLeavesCounterUnchanged(t *testing.T) {
	s := NewStore()
	ride := seedRide(t, s, 2, time.Now().Add(time.Hour))

	_, _, err := reserve(t, s, ride.ID, "rider-a", 3)
	require.ErrorIs(t, err, domain.ErrInsufficientCapacity)

	got, err := s.Rides().GetByID(context.Background(), ride.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.AvailableSeats)

	bookings, err := s.Bookings().ListByRide(context.Background(), ride.ID)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestCancelBooking_ReturnsSeats(t *testing.T) {
	s := NewStore()
	ride := seedRide(t, s, 3, time.Now().Add(time.Hour))
	b, _, err := reserve(t, s, ride.ID, "rider-a", 2)
	require.NoError(t, err)

	cancelled, err := s.Bookings().Cancel(context.Background(), b.ID, "rider-a")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)

	got, err := s.Rides().GetByID(context.Background(), ride.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.AvailableSeats)

	_, err = s.Bookings().Cancel(context.Background(), b.ID, "rider-a")
	assert.ErrorIs(t, err, domain.ErrBookingNotActive)
}

func TestCancelBooking_WrongRider(t *testing.T) {
	s := NewStore()
	ride := seedRide(t, s, 3, time.Now().Add(time.Hour))
	b, _, err := reserve(t, s, ride.ID, "rider-a", 1)
	require.NoError(t, err)

	_, err = s.Bookings().Cancel(context.Background(), b.ID, "rider-b")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestTransition_CompleteCascadesToBookings(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	ride := seedRide(t, s, 3, time.Now().Add(time.Hour))
	_, _, err := reserve(t, s, ride.ID, "rider-a", 1)
	require.NoError(t, err)

	_, err = s.Rides().Transition(ctx, ride.ID, domain.RideStatusCompleted)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = s.Rides().Transition(ctx, ride.ID, domain.RideStatusInProgress)
	require.NoError(t, err)
	done, err := s.Rides().Transition(ctx, ride.ID, domain.RideStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.RideStatusCompleted, done.Status)

	ok, err := s.Bookings().HasCompleted(ctx, ride.ID, "rider-a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Bookings().HasCompleted(ctx, ride.ID, "rider-b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRetireStale(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	old := seedRide(t, s, 3, time.Now().Add(-3*time.Hour))
	fresh := seedRide(t, s, 3, time.Now().Add(time.Hour))
	_, _, err := reserve(t, s, old.ID, "rider-a", 2)
	require.NoError(t, err)

	retired, err := s.Rides().RetireStale(ctx, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	require.Len(t, retired, 1)
	assert.Equal(t, old.ID, retired[0].ID)
	assert.Equal(t, domain.RideStatusCancelled, retired[0].Status)
	assert.Equal(t, 3, retired[0].AvailableSeats)

	got, err := s.Rides().GetByID(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RideStatusScheduled, got.Status)
}
