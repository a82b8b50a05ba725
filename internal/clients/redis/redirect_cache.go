package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

const redirectKeyPrefix = "bb:redirect:"

// RedirectCache remembers the canonical bbid a merged bbid resolves to.
type RedirectCache interface {
	Get(ctx context.Context, bbid string) (string, bool, error)
	Set(ctx context.Context, bbid, canonical string) error
	Close() error
}

type redirectCache struct {
	log *logger.Logger
	rdb goredis.UniversalClient
	ttl time.Duration
}

// NewRedirectCache connects to addr and pings it before returning.
func NewRedirectCache(log *logger.Logger, addr string, ttl time.Duration) (RedirectCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return newRedirectCache(log, rdb, ttl), nil
}

func newRedirectCache(log *logger.Logger, rdb goredis.UniversalClient, ttl time.Duration) *redirectCache {
	return &redirectCache{
		log: log.With("service", "RedisRedirectCache"),
		rdb: rdb,
		ttl: ttl,
	}
}

func (c *redirectCache) Get(ctx context.Context, bbid string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, redirectKey(bbid)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *redirectCache) Set(ctx context.Context, bbid, canonical string) error {
	return c.rdb.Set(ctx, redirectKey(bbid), canonical, c.ttl).Err()
}

func (c *redirectCache) Close() error { return c.rdb.Close() }

func redirectKey(bbid string) string { return redirectKeyPrefix + bbid }

// NopRedirectCache never hits. It stands in when REDIS_ADDR is unset.
type NopRedirectCache struct{}

func (NopRedirectCache) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (NopRedirectCache) Set(context.Context, string, string) error         { return nil }
func (NopRedirectCache) Close() error                                      { return nil }
