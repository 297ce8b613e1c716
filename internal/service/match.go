package service

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/tendolkarurja/IPD/internal/metrics"
	"github.com/tendolkarurja/IPD/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

type MatchConfig struct {
	PickupRadiusMeters float64
	TimeWindow         time.Duration
	BaseScore          float64
	PenaltyPerMinute   float64
	OracleConcurrency  int
	OracleTimeout      time.Duration
	SearchTimeout      time.Duration
	MaxResults         int
}

func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		PickupRadiusMeters: 2000,
		TimeWindow:         30 * time.Minute,
		BaseScore:          1000,
		PenaltyPerMinute:   50,
		OracleConcurrency:  8,
		OracleTimeout:      2 * time.Second,
		SearchTimeout:      5 * time.Second,
		MaxResults:         50,
	}
}

// MatchEngine ranks feasible ride offers for a rider request. It never writes.
type MatchEngine struct {
	index  ports.GeoTimeIndex
	oracle ports.FeasibilityOracle
	cfg    MatchConfig
	logger logger.Logger
}

func NewMatchEngine(
	index ports.GeoTimeIndex,
	oracle ports.FeasibilityOracle,
	cfg MatchConfig,
	logger logger.Logger,
) *MatchEngine {
	if cfg.OracleConcurrency <= 0 {
		cfg.OracleConcurrency = 1
	}
	return &MatchEngine{
		index:  index,
		oracle: oracle,
		cfg:    cfg,
		logger: logger,
	}
}

// FindMatches returns feasible candidates ordered by descending score.
// Only an invalid request is reported as an error; index and oracle
// failures degrade to fewer (or zero) results.
func (e *MatchEngine) FindMatches(ctx context.Context, req domain.RiderRequest) ([]domain.ScoredCandidate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	if e.cfg.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.SearchTimeout)
		defer cancel()
	}

	desired := req.DesiredTime.UTC()
	candidates, err := e.index.FindCandidates(ctx, domain.CandidateQuery{
		Origin:       req.Origin,
		RadiusMeters: e.cfg.PickupRadiusMeters,
		From:         desired.Add(-e.cfg.TimeWindow),
		To:           desired.Add(e.cfg.TimeWindow),
		MinSeats:     req.Seats,
	})
	if err != nil {
		metrics.SearchDegraded()
		e.logger.Warn("candidate lookup failed, returning empty result",
			logger.String("error", err.Error()),
		)
		return []domain.ScoredCandidate{}, nil
	}

	scored := e.evaluate(ctx, req, candidates)
	rank(scored)
	if e.cfg.MaxResults > 0 && len(scored) > e.cfg.MaxResults {
		scored = scored[:e.cfg.MaxResults]
	}

	metrics.ObserveSearch(start, len(candidates))
	e.logger.Debug("search finished",
		logger.Int("candidates", len(candidates)),
		logger.Int("matches", len(scored)),
		logger.Duration("took", time.Since(start)),
	)

	return scored, nil
}

// evaluate asks the oracle about every candidate concurrently and scores the
// feasible ones. When ctx expires it returns what has been collected so far.
func (e *MatchEngine) evaluate(
	ctx context.Context,
	req domain.RiderRequest,
	candidates []domain.Candidate,
) []domain.ScoredCandidate {
	var (
		mu      sync.Mutex
		results = make([]domain.ScoredCandidate, 0, len(candidates))
	)

	var g errgroup.Group
	g.SetLimit(e.cfg.OracleConcurrency)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, c := range candidates {
			if ctx.Err() != nil {
				break
			}
			g.Go(func() error {
				sc, ok := e.score(ctx, req, c)
				if !ok {
					return nil
				}
				mu.Lock()
				results = append(results, sc)
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()
	}()

	select {
	case <-done:
	case <-ctx.Done():
		metrics.SearchPartial()
		e.logger.Warn("search budget exhausted, returning partial result",
			logger.Int("candidates", len(candidates)),
		)
	}

	mu.Lock()
	defer mu.Unlock()
	return slices.Clone(results)
}

func (e *MatchEngine) score(
	ctx context.Context,
	req domain.RiderRequest,
	c domain.Candidate,
) (domain.ScoredCandidate, bool) {
	octx := ctx
	if e.cfg.OracleTimeout > 0 {
		var cancel context.CancelFunc
		octx, cancel = context.WithTimeout(ctx, e.cfg.OracleTimeout)
		defer cancel()
	}

	f, err := e.oracle.Evaluate(octx, c.Ride, req)
	if err != nil {
		metrics.OracleFailure()
		e.logger.Warn("feasibility check failed, dropping candidate",
			logger.String("ride_id", c.Ride.ID),
			logger.String("error", err.Error()),
		)
		return domain.ScoredCandidate{}, false
	}
	if !f.Feasible {
		return domain.ScoredCandidate{}, false
	}

	return domain.ScoredCandidate{
		Ride:           c.Ride,
		DistanceMeters: c.DistanceMeters,
		ExtraMinutes:   f.ExtraMinutes,
		Score:          e.cfg.BaseScore - c.DistanceMeters - f.ExtraMinutes*e.cfg.PenaltyPerMinute,
	}, true
}

// rank orders by score desc, then earlier departure, then ride id.
func rank(scored []domain.ScoredCandidate) {
	slices.SortFunc(scored, func(a, b domain.ScoredCandidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := a.Ride.DepartureTime.Compare(b.Ride.DepartureTime); c != 0 {
			return c
		}
		return strings.Compare(a.Ride.ID, b.Ride.ID)
	})
}
