package app

import (
	"context"
	"fmt"

	"github.com/yungbote/bookbrainz-backend/internal/clients/redis"
	"github.com/yungbote/bookbrainz-backend/internal/data/db"
	"github.com/yungbote/bookbrainz-backend/internal/observability"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

type Clients struct {
	DB            *db.Service
	RedirectCache redis.RedirectCache
	OtelShutdown  func(context.Context) error
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	// Tracing
	shutdown := observability.InitOTel(ctx, log, cfg.Otel)

	// Database
	dbService, err := db.NewService(log, cfg.DB)
	if err != nil {
		return Clients{}, fmt.Errorf("init database: %w", err)
	}
	if cfg.AutoMigrate {
		if err := dbService.AutoMigrateAll(); err != nil {
			_ = dbService.Close()
			return Clients{}, fmt.Errorf("database automigrate: %w", err)
		}
	}

	// Redis
	var cache redis.RedirectCache = redis.NopRedirectCache{}
	if cfg.RedisAddr != "" {
		c, err := redis.NewRedirectCache(log, cfg.RedisAddr, cfg.RedirectCacheTTL)
		if err != nil {
			log.Warn("Redis redirect cache unavailable, resolving from the database", "error", err)
		} else {
			cache = c
		}
	}

	return Clients{
		DB:            dbService,
		RedirectCache: cache,
		OtelShutdown:  shutdown,
	}, nil
}

func (c Clients) Close(ctx context.Context) {
	if c.RedirectCache != nil {
		_ = c.RedirectCache.Close()
	}
	if c.DB != nil {
		_ = c.DB.Close()
	}
	if c.OtelShutdown != nil {
		_ = c.OtelShutdown(ctx)
	}
}
