package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	DefaultPath = "config/config.yaml"

	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	OracleConstant = "constant"
	OracleDetour   = "detour"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Matching  MatchingConfig  `yaml:"matching"  validate:"required"`
	Redis     RedisConfig     `yaml:"redis"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres" validate:"required,oneof=postgres memory"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"carpool"   validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"20"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// MatchingConfig holds the search and scoring knobs of the match engine.
type MatchingConfig struct {
	PickupRadiusM      float64       `yaml:"pickup_radius_m"      env:"MATCH_PICKUP_RADIUS_M"      env-default:"2000"     validate:"gt=0"`
	TimeWindow         time.Duration `yaml:"time_window"          env:"MATCH_TIME_WINDOW"          env-default:"30m"      validate:"gt=0"`
	BaseScore          float64       `yaml:"base_score"           env:"MATCH_BASE_SCORE"           env-default:"1000"`
	PenaltyPerMinute   float64       `yaml:"penalty_per_minute"   env:"MATCH_PENALTY_PER_MINUTE"   env-default:"50"       validate:"gte=0"`
	Oracle             string        `yaml:"oracle"               env:"MATCH_ORACLE"               env-default:"constant" validate:"required,oneof=constant detour"`
	OracleExtraMinutes float64       `yaml:"oracle_extra_minutes" env:"MATCH_ORACLE_EXTRA_MINUTES" env-default:"5"        validate:"gte=0"`
	MaxDetourMinutes   float64       `yaml:"max_detour_minutes"   env:"MATCH_MAX_DETOUR_MINUTES"   env-default:"15"       validate:"gte=0"`
	AverageSpeedKmh    float64       `yaml:"average_speed_kmh"    env:"MATCH_AVERAGE_SPEED_KMH"    env-default:"30"       validate:"gt=0"`
	OracleConcurrency  int           `yaml:"oracle_concurrency"   env:"MATCH_ORACLE_CONCURRENCY"   env-default:"8"        validate:"min=1"`
	OracleTimeout      time.Duration `yaml:"oracle_timeout"       env:"MATCH_ORACLE_TIMEOUT"       env-default:"2s"       validate:"gt=0"`
	SearchTimeout      time.Duration `yaml:"search_timeout"       env:"MATCH_SEARCH_TIMEOUT"       env-default:"5s"       validate:"gt=0"`
	MaxResults         int           `yaml:"max_results"          env:"MATCH_MAX_RESULTS"          env-default:"50"       validate:"min=1"`
}

// RedisConfig enables the rating cache when Addr is set.
type RedisConfig struct {
	Addr      string        `yaml:"addr"       env:"REDIS_ADDR"       env-default:""`
	Password  string        `yaml:"password"   env:"REDIS_PASSWORD"   env-default:""`
	DB        int           `yaml:"db"         env:"REDIS_DB"         env-default:"0"  validate:"min=0"`
	RatingTTL time.Duration `yaml:"rating_ttl" env:"REDIS_RATING_TTL" env-default:"5m" validate:"gt=0"`
}

func (r RedisConfig) Enabled() bool { return r.Addr != "" }

// RabbitMQConfig enables domain event publishing when URL is set.
type RabbitMQConfig struct {
	URL      string `yaml:"url"      env:"RABBITMQ_URL"      env-default:""`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"carpool_topic" validate:"required"`
}

func (r RabbitMQConfig) Enabled() bool { return r.URL != "" }

type SchedulerConfig struct {
	Interval   time.Duration `yaml:"interval"    env:"SCHEDULER_INTERVAL"    env-default:"1m" validate:"required,gt=0"`
	StaleAfter time.Duration `yaml:"stale_after" env:"SCHEDULER_STALE_AFTER" env-default:"2h" validate:"required,gt=0"`
}

// Load reads .env (if present) into the environment, then the yaml file at
// path with env overrides. An empty path falls back to CONFIG_PATH and then
// DefaultPath.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(".env")

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = DefaultPath
	}

	var cfg Config
	if err := cleanenvport.LoadPath(path, &cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &cfg, nil
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
