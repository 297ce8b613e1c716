package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/tendolkarurja/IPD/internal/service/ports"
)

// ParticipationValidator only recognises rider-reviews-driver: the target
// must drive the ride and the reviewer must hold a COMPLETED booking on it.
type ParticipationValidator struct {
	rideRepo    ports.RideRepo
	bookingRepo ports.BookingRepo
}

func NewParticipationValidator(rideRepo ports.RideRepo, bookingRepo ports.BookingRepo) *ParticipationValidator {
	return &ParticipationValidator{
		rideRepo:    rideRepo,
		bookingRepo: bookingRepo,
	}
}

func (v *ParticipationValidator) Validate(ctx context.Context, rideID, reviewerID, targetID string) (bool, error) {
	rideID = domain.CanonicalID(rideID)
	reviewerID = domain.CanonicalID(reviewerID)

	ride, err := v.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get ride: %w", err)
	}

	if domain.CanonicalID(ride.DriverID) != domain.CanonicalID(targetID) {
		return false, nil
	}

	completed, err := v.bookingRepo.HasCompleted(ctx, rideID, reviewerID)
	if err != nil {
		return false, fmt.Errorf("check completed booking: %w", err)
	}

	return completed, nil
}
