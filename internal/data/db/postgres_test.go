package db

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "bookbrainz", Password: "pw", Name: "bookbrainz"}
	if got, want := cfg.DSN(), "postgres://bookbrainz:pw@db:5432/bookbrainz?sslmode=disable"; got != want {
		t.Fatalf("dsn: want=%q got=%q", want, got)
	}
}

func TestNewServiceRejectsUnknownDriver(t *testing.T) {
	if _, err := NewService(logger.Nop(), Config{Driver: "mysql"}); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}

func TestSQLiteServiceMigratesAndPings(t *testing.T) {
	svc, err := NewService(logger.Nop(), Config{
		Driver:     "SQLite",
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })

	if svc.Driver() != DriverSQLite {
		t.Fatalf("driver: %q", svc.Driver())
	}
	if err := svc.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if err := svc.AutoMigrateAll(); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	for _, table := range []string{"entity", "entity_redirect", "user_collection", "user_collection_item", "relationship_type"} {
		if !svc.DB().Migrator().HasTable(table) {
			t.Fatalf("missing table %q", table)
		}
	}
}
