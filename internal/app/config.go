package app

import (
	"time"

	"github.com/yungbote/bookbrainz-backend/internal/data/db"
	"github.com/yungbote/bookbrainz-backend/internal/modules/entities"
	"github.com/yungbote/bookbrainz-backend/internal/observability"
	"github.com/yungbote/bookbrainz-backend/internal/platform/envutil"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

type Config struct {
	Port    string
	LogMode string

	DB          db.Config
	AutoMigrate bool

	RedisAddr        string
	RedirectCacheTTL time.Duration

	MaxRedirectHops    int
	HydrateConcurrency int
	EntityTypesYAML    string

	CORSOrigins []string
	Otel        observability.OtelConfig
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:    envutil.String("PORT", "8080"),
		LogMode: envutil.String("LOG_MODE", "development"),
		DB: db.Config{
			Driver:     envutil.String("DB_DRIVER", db.DriverPostgres),
			Host:       envutil.String("POSTGRES_HOST", "localhost"),
			Port:       envutil.String("POSTGRES_PORT", "5432"),
			User:       envutil.String("POSTGRES_USER", "bookbrainz"),
			Password:   envutil.String("POSTGRES_PASSWORD", ""),
			Name:       envutil.String("POSTGRES_NAME", "bookbrainz"),
			SQLitePath: envutil.String("SQLITE_PATH", ""),
		},
		AutoMigrate: envutil.Bool("DB_AUTO_MIGRATE", true),

		RedisAddr:        envutil.String("REDIS_ADDR", ""),
		RedirectCacheTTL: envutil.Seconds("REDIS_REDIRECT_TTL_SECONDS", time.Hour),

		MaxRedirectHops:    envutil.Int("ENTITY_REDIRECT_MAX_HOPS", entities.DefaultMaxRedirectHops),
		HydrateConcurrency: envutil.Int("ENTITY_HYDRATE_CONCURRENCY", entities.DefaultHydrateConcurrency),
		EntityTypesYAML:    envutil.String("ENTITY_TYPES_YAML", ""),

		CORSOrigins: envutil.List("CORS_ALLOW_ORIGINS", nil),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "bookbrainz-backend"),
			Environment: envutil.String("OTEL_ENVIRONMENT", "development"),
			Version:     envutil.String("OTEL_SERVICE_VERSION", ""),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "")),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: envutil.Float("OTEL_SAMPLE_RATIO", 1),
		},
	}
	if log != nil {
		log.Info("Config loaded",
			"port", cfg.Port,
			"db_driver", cfg.DB.Driver,
			"redis_cache", cfg.RedisAddr != "",
			"otel_enabled", cfg.Otel.Enabled,
		)
	}
	return cfg
}
