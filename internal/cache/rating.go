// Package cache keeps read-through copies of rating projections in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const keyPrefix = "carpool:rating:"

// setIfNotOlder writes ARGV[1] unless the stored entry already counts more
// reviews than ARGV[2]. Review ledgers only grow, so the count orders projections.
const setIfNotOlder = `
local cur = redis.call('GET', KEYS[1])
if cur then
	local ok, stored = pcall(cjson.decode, cur)
	if ok and type(stored) == 'table' and tonumber(stored.rides_completed) ~= nil
		and tonumber(stored.rides_completed) > tonumber(ARGV[2]) then
		return 0
	end
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd
}

// RatingCache never fails the caller: Redis errors are logged and treated
// as misses, the database stays the source of truth.
type RatingCache struct {
	client redisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewRatingCache(client redisClient, ttl time.Duration, logger logger.Logger) *RatingCache {
	return &RatingCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func key(userID string) string {
	return keyPrefix + userID
}

func (c *RatingCache) Get(ctx context.Context, userID string) (*domain.UserRating, bool) {
	data, err := c.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("rating cache read failed",
				logger.String("user_id", userID),
				logger.String("error", err.Error()),
			)
		}
		return nil, false
	}

	var rating domain.UserRating
	if err = json.Unmarshal(data, &rating); err != nil {
		c.logger.Warn("rating cache entry corrupted",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return nil, false
	}

	return &rating, true
}

// Set stores the projection unless a newer one is already cached. A reader
// that loaded the projection just before a review committed cannot push the
// fresh entry written by that review out of the cache.
func (c *RatingCache) Set(ctx context.Context, rating *domain.UserRating) {
	data, err := json.Marshal(rating)
	if err != nil {
		return
	}

	written, err := c.client.Eval(ctx, setIfNotOlder,
		[]string{key(rating.UserID)},
		data, rating.RidesCompleted, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		c.logger.Warn("rating cache write failed",
			logger.String("user_id", rating.UserID),
			logger.String("error", err.Error()),
		)
		return
	}
	if written == 0 {
		c.logger.Debug("rating cache kept newer entry",
			logger.String("user_id", rating.UserID),
			logger.Int("rides_completed", rating.RidesCompleted),
		)
	}
}

// Noop is used when Redis is not configured.
type Noop struct{}

func (Noop) Get(context.Context, string) (*domain.UserRating, bool) { return nil, false }

func (Noop) Set(context.Context, *domain.UserRating) {}

// Connect opens a client and checks it with PING.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
