package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/booking-api/internal/config"
)

const (
	versionKey = "slots:version"
	keyPrefix  = "slots:query"
)

// SlotCache stores serialized GET /slots responses. Entries are keyed by a
// version counter so a generation run can drop every cached listing with a
// single INCR.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotCache(rdb *redis.Client, ttl time.Duration) *SlotCache {
	return &SlotCache{rdb: rdb, ttl: ttl}
}

// Connect opens a client and pings it once.
func Connect(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
	}
	return rdb, nil
}

func (c *SlotCache) Get(ctx context.Context, query string) ([]byte, bool, error) {
	key, err := c.key(ctx, query)
	if err != nil {
		return nil, false, err
	}

	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *SlotCache) Set(ctx context.Context, query string, body []byte) error {
	key, err := c.key(ctx, query)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, body, c.ttl).Err()
}

// Invalidate bumps the version; old entries expire through their TTL.
func (c *SlotCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, versionKey).Err()
}

func (c *SlotCache) key(ctx context.Context, query string) (string, error) {
	v, err := c.rdb.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return Key(v, query), nil
}

func Key(version int64, query string) string {
	return fmt.Sprintf("%s:%d:%s", keyPrefix, version, query)
}
