package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/tendolkarurja/IPD/internal/service/ports/mocks"
)

func TestParticipationValidator(t *testing.T) {
	tests := []struct {
		name      string
		rideErr   error
		driverID  string
		completed bool
		want      bool
		wantErr   bool
		checksBkg bool
	}{
		{name: "rider with completed booking", driverID: "driver-1", completed: true, want: true, checksBkg: true},
		{name: "rider without completed booking", driverID: "driver-1", completed: false, want: false, checksBkg: true},
		{name: "target is not the driver", driverID: "someone-else", want: false},
		{name: "unknown ride", rideErr: domain.ErrRideNotFound, want: false},
		{name: "store failure", rideErr: errors.New("timeout"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rideRepo := mocks.NewMockRideRepo(t)
			bookingRepo := mocks.NewMockBookingRepo(t)
			v := NewParticipationValidator(rideRepo, bookingRepo)

			if tt.rideErr != nil {
				rideRepo.EXPECT().GetByID(mock.Anything, "ride-1").Return(nil, tt.rideErr)
			} else {
				rideRepo.EXPECT().GetByID(mock.Anything, "ride-1").
					Return(&domain.Ride{ID: "ride-1", DriverID: tt.driverID}, nil)
			}
			if tt.checksBkg {
				bookingRepo.EXPECT().HasCompleted(mock.Anything, "ride-1", "rider-1").Return(tt.completed, nil)
			}

			ok, err := v.Validate(context.Background(), "ride-1", "rider-1", "driver-1")

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
