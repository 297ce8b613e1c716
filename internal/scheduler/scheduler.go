package scheduler

import (
	"context"
	"time"

	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type staleRideRetirer interface {
	RetireStale(ctx context.Context) ([]*domain.Ride, error)
}

// Scheduler periodically retires SCHEDULED offers whose departure has long
// passed so they stop showing up in candidate lookups.
type Scheduler struct {
	rideService staleRideRetirer
	interval    time.Duration
	logger      logger.Logger
}

func New(
	rideService staleRideRetirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		rideService: rideService,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("stale ride sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("stale ride sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	retired, err := s.rideService.RetireStale(ctx)
	if err != nil {
		s.logger.Error("failed to retire stale rides",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range retired {
		s.logger.Debug("ride retired",
			logger.String("ride_id", r.ID),
			logger.String("driver_id", r.DriverID),
			logger.Time("departure_time", r.DepartureTime),
		)
	}
}
