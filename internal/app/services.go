package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/bookbrainz-backend/internal/modules/collections"
	"github.com/yungbote/bookbrainz-backend/internal/modules/entities"
	"github.com/yungbote/bookbrainz-backend/internal/modules/lookups"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

type Services struct {
	Entities    entities.Usecases
	Collections collections.Usecases
	Lookups     lookups.Usecases
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")
	return Services{
		Entities: entities.New(entities.UsecasesDeps{
			Log:                log,
			Entities:           reposet.Entity,
			Redirects:          reposet.Redirect,
			RelationshipSets:   reposet.RelationshipSet,
			RedirectCache:      clients.RedirectCache,
			Registry:           entities.LoadRegistry(log, cfg.EntityTypesYAML),
			MaxRedirectHops:    cfg.MaxRedirectHops,
			HydrateConcurrency: cfg.HydrateConcurrency,
		}),
		Collections: collections.New(collections.UsecasesDeps{
			DB:          db,
			Log:         log,
			Collections: reposet.Collection,
			Entities:    reposet.Entity,
		}),
		Lookups: lookups.New(lookups.UsecasesDeps{
			Log:     log,
			Lookups: reposet.Lookup,
		}),
	}
}
