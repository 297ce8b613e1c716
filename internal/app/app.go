package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/tendolkarurja/IPD/internal/cache"
	"github.com/tendolkarurja/IPD/internal/config"
	"github.com/tendolkarurja/IPD/internal/events"
	"github.com/tendolkarurja/IPD/internal/handler"
	"github.com/tendolkarurja/IPD/internal/middleware"
	"github.com/tendolkarurja/IPD/internal/oracle"
	"github.com/tendolkarurja/IPD/internal/repository"
	"github.com/tendolkarurja/IPD/internal/repository/memory"
	"github.com/tendolkarurja/IPD/internal/router"
	"github.com/tendolkarurja/IPD/internal/scheduler"
	"github.com/tendolkarurja/IPD/internal/service"
	"github.com/tendolkarurja/IPD/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/rabbitmq"
)

const appName = "carpool"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	rabbit     *rabbitmq.RabbitClient
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

// storage groups the repositories of one backend.
type storage struct {
	rides    ports.RideRepo
	bookings ports.BookingRepo
	reviews  ports.ReviewRepo
	ratings  ports.RatingRepo
	index    ports.GeoTimeIndex
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	app.log = log

	if err = app.initServices(); err != nil {
		app.closeClients()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func NewLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

func (a *App) initStorage() (*storage, error) {
	if a.cfg.Storage.Driver == config.StorageMemory {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &storage{
			rides:    store.Rides(),
			bookings: store.Bookings(),
			reviews:  store.Reviews(),
			ratings:  store.Ratings(),
			index:    store.Index(),
		}, nil
	}

	if err := RunMigrations(context.Background(), a.cfg, a.log, "up"); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err := a.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	strategy := repository.DefaultStrategy()
	return &storage{
		rides:    repository.NewRideRepo(a.db, strategy),
		bookings: repository.NewBookingRepo(a.db, strategy),
		reviews:  repository.NewReviewRepo(a.db, strategy),
		ratings:  repository.NewRatingRepo(a.db, strategy),
		index:    repository.NewGeoIndex(a.db, strategy),
	}, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		_ = db.Master.Close()
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRatingCache() (ports.RatingCache, error) {
	if !a.cfg.Redis.Enabled() {
		return cache.Noop{}, nil
	}

	client, err := cache.Connect(context.Background(), a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	a.redis = client

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "rating cache enabled",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Duration("ttl", a.cfg.Redis.RatingTTL),
	)

	return cache.NewRatingCache(client, a.cfg.Redis.RatingTTL, a.log), nil
}

func (a *App) initPublisher() (*events.Publisher, error) {
	if !a.cfg.RabbitMQ.Enabled() {
		return events.NewDisabled(a.log), nil
	}

	publisher, client, err := events.Connect(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange, a.log)
	if err != nil {
		return nil, err
	}
	a.rabbit = client

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "domain events enabled",
		logger.String("exchange", a.cfg.RabbitMQ.Exchange),
	)

	return publisher, nil
}

func newOracle(cfg config.MatchingConfig) (ports.FeasibilityOracle, error) {
	switch cfg.Oracle {
	case config.OracleDetour:
		detour, err := oracle.NewDetour(cfg.MaxDetourMinutes, cfg.AverageSpeedKmh)
		if err != nil {
			return nil, err
		}
		return detour, nil
	default:
		return oracle.NewConstant(cfg.OracleExtraMinutes), nil
	}
}

func matchConfig(cfg config.MatchingConfig) service.MatchConfig {
	return service.MatchConfig{
		PickupRadiusMeters: cfg.PickupRadiusM,
		TimeWindow:         cfg.TimeWindow,
		BaseScore:          cfg.BaseScore,
		PenaltyPerMinute:   cfg.PenaltyPerMinute,
		OracleConcurrency:  cfg.OracleConcurrency,
		OracleTimeout:      cfg.OracleTimeout,
		SearchTimeout:      cfg.SearchTimeout,
		MaxResults:         cfg.MaxResults,
	}
}

func (a *App) initServices() error {
	store, err := a.initStorage()
	if err != nil {
		return err
	}

	ratingCache, err := a.initRatingCache()
	if err != nil {
		return err
	}

	publisher, err := a.initPublisher()
	if err != nil {
		return err
	}

	feasibility, err := newOracle(a.cfg.Matching)
	if err != nil {
		return fmt.Errorf("init oracle: %w", err)
	}

	rideService := service.NewRideService(store.rides, store.bookings, publisher, a.cfg.Scheduler.StaleAfter, a.log)
	matchEngine := service.NewMatchEngine(store.index, feasibility, matchConfig(a.cfg.Matching), a.log)
	bookingService := service.NewBookingService(store.bookings, publisher, a.log)
	validator := service.NewParticipationValidator(store.rides, store.bookings)
	reviewService := service.NewReviewService(store.reviews, validator, ratingCache, publisher, a.log)
	ratingService := service.NewRatingService(store.ratings, ratingCache)

	a.scheduler = scheduler.New(
		rideService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(rideService, matchEngine, bookingService, reviewService, ratingService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		a.closeClients()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.closeClients()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// closeClients releases broker, cache and database connections. Errors are
// logged because nothing useful can be done with them at this point.
func (a *App) closeClients() {
	if a.rabbit != nil {
		if err := a.rabbit.Close(); err != nil {
			a.log.Error("close rabbitmq", logger.String("error", err.Error()))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("close redis", logger.String("error", err.Error()))
		}
	}
	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			a.log.Error("close db", logger.String("error", err.Error()))
		} else {
			a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
		}
	}
}
