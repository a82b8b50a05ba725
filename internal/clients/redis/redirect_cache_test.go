package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

func TestNopRedirectCache(t *testing.T) {
	var c RedirectCache = NopRedirectCache{}
	if err := c.Set(context.Background(), "a", "b"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := c.Get(context.Background(), "a"); ok || err != nil {
		t.Fatalf("nop cache should never hit: ok=%v err=%v", ok, err)
	}
}

func TestNewRedirectCacheRequiresAddr(t *testing.T) {
	if _, err := NewRedirectCache(logger.Nop(), "  ", time.Minute); err == nil {
		t.Fatalf("expected error for empty addr")
	}
	if _, err := NewRedirectCache(nil, "localhost:6379", time.Minute); err == nil {
		t.Fatalf("expected error for nil logger")
	}
}

func TestRedirectCacheRoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis integration tests")
	}
	c, err := NewRedirectCache(logger.Nop(), addr, time.Minute)
	if err != nil {
		t.Fatalf("NewRedirectCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	src, dst := uuid.NewString(), uuid.NewString()
	if _, ok, err := c.Get(ctx, src); ok || err != nil {
		t.Fatalf("cold Get: ok=%v err=%v", ok, err)
	}
	if err := c.Set(ctx, src, dst); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := c.Get(ctx, src)
	if err != nil || !ok || got != dst {
		t.Fatalf("Get: got=%q ok=%v err=%v", got, ok, err)
	}
}
