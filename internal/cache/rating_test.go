package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeRedis struct {
	data   map[string][]byte
	ttl    map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string][]byte{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

// Eval mirrors setIfNotOlder.
func (f *fakeRedis) Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	if script != setIfNotOlder {
		return redis.NewCmdResult(nil, errors.New("unexpected script"))
	}
	k := keys[0]
	if cur, ok := f.data[k]; ok {
		var stored domain.UserRating
		if json.Unmarshal(cur, &stored) == nil && stored.RidesCompleted > args[1].(int) {
			return redis.NewCmdResult(int64(0), nil)
		}
	}
	f.data[k] = args[0].([]byte)
	f.ttl[k] = time.Duration(args[2].(int64)) * time.Millisecond
	return redis.NewCmdResult(int64(1), nil)
}

func TestRatingCache_SetGet(t *testing.T) {
	fake := newFakeRedis()
	c := NewRatingCache(fake, 5*time.Minute, newTestLogger(t))
	ctx := context.Background()

	_, ok := c.Get(ctx, "u1")
	assert.False(t, ok)

	c.Set(ctx, &domain.UserRating{UserID: "u1", AverageRating: 4.5, RidesCompleted: 2})
	assert.Equal(t, 5*time.Minute, fake.ttl["carpool:rating:u1"])

	got, ok := c.Get(ctx, "u1")
	require.True(t, ok)
	assert.Equal(t, 4.5, got.AverageRating)
	assert.Equal(t, 2, got.RidesCompleted)
}

func TestRatingCache_KeepsNewerEntry(t *testing.T) {
	fake := newFakeRedis()
	c := NewRatingCache(fake, time.Minute, newTestLogger(t))
	ctx := context.Background()

	// A review commits and writes the fresh projection, then a reader that
	// loaded the projection before the commit tries to cache it.
	c.Set(ctx, &domain.UserRating{UserID: "u1", AverageRating: 4, RidesCompleted: 2})
	c.Set(ctx, &domain.UserRating{UserID: "u1", AverageRating: 5, RidesCompleted: 1})

	got, ok := c.Get(ctx, "u1")
	require.True(t, ok)
	assert.Equal(t, 2, got.RidesCompleted)
	assert.Equal(t, 4.0, got.AverageRating)

	c.Set(ctx, &domain.UserRating{UserID: "u1", AverageRating: 3.67, RidesCompleted: 3})

	got, ok = c.Get(ctx, "u1")
	require.True(t, ok)
	assert.Equal(t, 3, got.RidesCompleted)
}

func TestRatingCache_SetOverwritesCorruptedEntry(t *testing.T) {
	fake := newFakeRedis()
	fake.data["carpool:rating:u1"] = []byte("{not json")
	c := NewRatingCache(fake, time.Minute, newTestLogger(t))

	c.Set(context.Background(), &domain.UserRating{UserID: "u1", AverageRating: 2, RidesCompleted: 1})

	got, ok := c.Get(context.Background(), "u1")
	require.True(t, ok)
	assert.Equal(t, 2.0, got.AverageRating)
}

func TestRatingCache_ErrorsAreMisses(t *testing.T) {
	fake := newFakeRedis()
	fake.getErr = errors.New("connection refused")
	c := NewRatingCache(fake, time.Minute, newTestLogger(t))

	_, ok := c.Get(context.Background(), "u1")

	assert.False(t, ok)
}

func TestRatingCache_CorruptedEntry(t *testing.T) {
	fake := newFakeRedis()
	fake.data["carpool:rating:u1"] = []byte("{not json")
	c := NewRatingCache(fake, time.Minute, newTestLogger(t))

	_, ok := c.Get(context.Background(), "u1")

	assert.False(t, ok)
}

func TestRatingCache_StoresJSON(t *testing.T) {
	fake := newFakeRedis()
	c := NewRatingCache(fake, time.Minute, newTestLogger(t))

	c.Set(context.Background(), &domain.UserRating{UserID: "u1", AverageRating: 3, RidesCompleted: 1})

	var stored domain.UserRating
	require.NoError(t, json.Unmarshal(fake.data["carpool:rating:u1"], &stored))
	assert.Equal(t, "u1", stored.UserID)
}
