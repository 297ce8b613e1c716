package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/tendolkarurja/IPD/internal/service/ports/mocks"
)

var searchAt = time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC)

func validRequest() domain.RiderRequest {
	return domain.RiderRequest{
		Origin:      domain.Point{Lat: 12.97, Lng: 77.59},
		Destination: domain.Point{Lat: 13.19, Lng: 77.70},
		DesiredTime: searchAt,
		Seats:       1,
	}
}

func candidate(id string, dist float64, departure time.Time) domain.Candidate {
	return domain.Candidate{
		Ride:           domain.Ride{ID: id, DepartureTime: departure, Status: domain.RideStatusScheduled, AvailableSeats: 3},
		DistanceMeters: dist,
	}
}

func TestMatchEngine_InvalidRequest(t *testing.T) {
	index := mocks.NewMockGeoTimeIndex(t)
	oracle := mocks.NewMockFeasibilityOracle(t)
	engine := NewMatchEngine(index, oracle, DefaultMatchConfig(), newTestLogger(t))

	cases := map[string]func(r *domain.RiderRequest){
		"zero seats":       func(r *domain.RiderRequest) { r.Seats = 0 },
		"bad latitude":     func(r *domain.RiderRequest) { r.Origin.Lat = 91 },
		"bad destination":  func(r *domain.RiderRequest) { r.Destination.Lng = -181 },
		"missing datetime": func(r *domain.RiderRequest) { r.DesiredTime = time.Time{} },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)

			_, err := engine.FindMatches(context.Background(), req)

			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}
}

func TestMatchEngine_QueryUsesConfiguredBounds(t *testing.T) {
	index := mocks.NewMockGeoTimeIndex(t)
	oracle := mocks.NewMockFeasibilityOracle(t)
	engine := NewMatchEngine(index, oracle, DefaultMatchConfig(), newTestLogger(t))

	req := validRequest()
	req.Seats = 2

	index.EXPECT().FindCandidates(mock.Anything, domain.CandidateQuery{
		Origin:       req.Origin,
		RadiusMeters: 2000,
		From:         searchAt.Add(-30 * time.Minute),
		To:           searchAt.Add(30 * time.Minute),
		MinSeats:     2,
	}).Return([]domain.Candidate{}, nil)

	got, err := engine.FindMatches(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMatchEngine_ScoresAndRanks(t *testing.T) {
	index := mocks.NewMockGeoTimeIndex(t)
	oracle := mocks.NewMockFeasibilityOracle(t)
	engine := NewMatchEngine(index, oracle, DefaultMatchConfig(), newTestLogger(t))

	index.EXPECT().FindCandidates(mock.Anything, mock.Anything).Return([]domain.Candidate{
		candidate("far", 800, searchAt),
		candidate("near", 100, searchAt),
		candidate("tie-late", 300, searchAt.Add(10*time.Minute)),
		candidate("tie-early", 300, searchAt.Add(-10*time.Minute)),
		candidate("infeasible", 50, searchAt),
	}, nil)

	oracle.EXPECT().Evaluate(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ride domain.Ride, _ domain.RiderRequest) (domain.Feasibility, error) {
			if ride.ID == "infeasible" {
				return domain.Feasibility{Feasible: false}, nil
			}
			return domain.Feasibility{Feasible: true, ExtraMinutes: 5}, nil
		})

	got, err := engine.FindMatches(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, got, 4)

	ids := []string{got[0].Ride.ID, got[1].Ride.ID, got[2].Ride.ID, got[3].Ride.ID}
	assert.Equal(t, []string{"near", "tie-early", "tie-late", "far"}, ids)
	assert.Equal(t, 1000-100-5*50.0, got[0].Score)
	assert.Equal(t, 5.0, got[0].ExtraMinutes)
	assert.Equal(t, 100.0, got[0].DistanceMeters)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

func TestMatchEngine_TieBrokenByID(t *testing.T) {
	index := mocks.NewMockGeoTimeIndex(t)
	oracle := mocks.NewMockFeasibilityOracle(t)
	engine := NewMatchEngine(index, oracle, DefaultMatchConfig(), newTestLogger(t))

	index.EXPECT().FindCandidates(mock.Anything, mock.Anything).Return([]domain.Candidate{
		candidate("b", 300, searchAt),
		candidate("a", 300, searchAt),
	}, nil)
	oracle.EXPECT().Evaluate(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Feasibility{Feasible: true}, nil)

	got, err := engine.FindMatches(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Ride.ID)
	assert.Equal(t, "b", got[1].Ride.ID)
}

func TestMatchEngine_OracleFailureDropsOnlyThatCandidate(t *testing.T) {
	index := mocks.NewMockGeoTimeIndex(t)
	oracle := mocks.NewMockFeasibilityOracle(t)
	engine := NewMatchEngine(index, oracle, DefaultMatchConfig(), newTestLogger(t))

	index.EXPECT().FindCandidates(mock.Anything, mock.Anything).Return([]domain.Candidate{
		candidate("ok", 100, searchAt),
		candidate("broken", 50, searchAt),
	}, nil)
	oracle.EXPECT().Evaluate(mock.Anything, mock.MatchedBy(func(r domain.Ride) bool { return r.ID == "ok" }), mock.Anything).
		Return(domain.Feasibility{Feasible: true, ExtraMinutes: 1}, nil)
	oracle.EXPECT().Evaluate(mock.Anything, mock.MatchedBy(func(r domain.Ride) bool { return r.ID == "broken" }), mock.Anything).
		Return(domain.Feasibility{}, errors.New("router unavailable"))

	got, err := engine.FindMatches(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Ride.ID)
}

func TestMatchEngine_AllOracleCallsFail(t *testing.T) {
	index := mocks.NewMockGeoTimeIndex(t)
	oracle := mocks.NewMockFeasibilityOracle(t)
	engine := NewMatchEngine(index, oracle, DefaultMatchConfig(), newTestLogger(t))

	index.EXPECT().FindCandidates(mock.Anything, mock.Anything).Return([]domain.Candidate{
		candidate("a", 100, searchAt),
		candidate("b", 200, searchAt),
	}, nil)
	oracle.EXPECT().Evaluate(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Feasibility{}, errors.New("timeout"))

	got, err := engine.FindMatches(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatchEngine_IndexFailureDegradesToEmpty(t *testing.T) {
	index := mocks.NewMockGeoTimeIndex(t)
	oracle := mocks.NewMockFeasibilityOracle(t)
	engine := NewMatchEngine(index, oracle, DefaultMatchConfig(), newTestLogger(t))

	index.EXPECT().FindCandidates(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	got, err := engine.FindMatches(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatchEngine_SearchBudgetReturnsPartialResult(t *testing.T) {
	index := mocks.NewMockGeoTimeIndex(t)
	oracle := mocks.NewMockFeasibilityOracle(t)

	cfg := DefaultMatchConfig()
	cfg.SearchTimeout = 100 * time.Millisecond
	cfg.OracleTimeout = 0
	engine := NewMatchEngine(index, oracle, cfg, newTestLogger(t))

	index.EXPECT().FindCandidates(mock.Anything, mock.Anything).Return([]domain.Candidate{
		candidate("fast", 100, searchAt),
		candidate("slow", 50, searchAt),
	}, nil)
	oracle.EXPECT().Evaluate(mock.Anything, mock.MatchedBy(func(r domain.Ride) bool { return r.ID == "fast" }), mock.Anything).
		Return(domain.Feasibility{Feasible: true}, nil)
	oracle.EXPECT().Evaluate(mock.Anything, mock.MatchedBy(func(r domain.Ride) bool { return r.ID == "slow" }), mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.Ride, _ domain.RiderRequest) (domain.Feasibility, error) {
			<-ctx.Done()
			return domain.Feasibility{}, ctx.Err()
		})

	start := time.Now()
	got, err := engine.FindMatches(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	require.Len(t, got, 1)
	assert.Equal(t, "fast", got[0].Ride.ID)
}

func TestMatchEngine_MaxResults(t *testing.T) {
	index := mocks.NewMockGeoTimeIndex(t)
	oracle := mocks.NewMockFeasibilityOracle(t)

	cfg := DefaultMatchConfig()
	cfg.MaxResults = 2
	engine := NewMatchEngine(index, oracle, cfg, newTestLogger(t))

	index.EXPECT().FindCandidates(mock.Anything, mock.Anything).Return([]domain.Candidate{
		candidate("a", 100, searchAt),
		candidate("b", 200, searchAt),
		candidate("c", 300, searchAt),
	}, nil)
	oracle.EXPECT().Evaluate(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Feasibility{Feasible: true}, nil)

	got, err := engine.FindMatches(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Ride.ID)
	assert.Equal(t, "b", got[1].Ride.ID)
}
