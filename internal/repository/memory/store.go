// Package memory is an in-process storage backend. Every ride and every
// rated user owns a mutex, so writers serialize per ride (reservations,
// lifecycle) and per target user (reviews), never globally.
package memory

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/tendolkarurja/IPD/internal/domain"
)

type rideSlot struct {
	mu       sync.Mutex
	ride     domain.Ride
	bookings []*domain.Booking
}

type reviewKey struct {
	rideID     string
	reviewerID string
}

type targetSlot struct {
	mu      sync.Mutex
	reviews []*domain.Review
	seen    map[reviewKey]struct{}
	rating  domain.UserRating
}

type Store struct {
	rides       *xsync.MapOf[string, *rideSlot]
	bookingRide *xsync.MapOf[string, string]
	targets     *xsync.MapOf[string, *targetSlot]
}

func NewStore() *Store {
	return &Store{
		rides:       xsync.NewMapOf[string, *rideSlot](),
		bookingRide: xsync.NewMapOf[string, string](),
		targets:     xsync.NewMapOf[string, *targetSlot](),
	}
}

func (s *Store) Rides() *RideRepository { return &RideRepository{store: s} }

func (s *Store) Bookings() *BookingRepository { return &BookingRepository{store: s} }

func (s *Store) Reviews() *ReviewRepository { return &ReviewRepository{store: s} }

func (s *Store) Ratings() *RatingRepository { return &RatingRepository{store: s} }

func (s *Store) Index() *GeoIndex { return &GeoIndex{store: s} }

func (s *Store) target(userID string) *targetSlot {
	slot, _ := s.targets.LoadOrCompute(userID, func() *targetSlot {
		return &targetSlot{
			seen:   make(map[reviewKey]struct{}),
			rating: domain.UserRating{UserID: userID},
		}
	})
	return slot
}

func cloneBookings(in []*domain.Booking, keep func(*domain.Booking) bool) []*domain.Booking {
	out := make([]*domain.Booking, 0, len(in))
	for _, b := range in {
		if keep != nil && !keep(b) {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out
}
