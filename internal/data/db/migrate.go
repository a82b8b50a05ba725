package db

import (
	"fmt"

	"github.com/yungbote/bookbrainz-backend/internal/domain/collection"
	"github.com/yungbote/bookbrainz-backend/internal/domain/editor"
	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/domain/lookup"
	"gorm.io/gorm"
)

// Models lists every table in migration order: lookups first, then editors,
// entities, and collections.
func Models() []any {
	out := []any{}
	out = append(out, lookup.Models()...)
	out = append(out, &editor.Editor{})
	out = append(out, entity.TableModels()...)
	out = append(out, collection.TableModels()...)
	return out
}

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables")
	return AutoMigrateAll(s.db)
}
