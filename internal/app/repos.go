package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/bookbrainz-backend/internal/data/repos"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

type Repos struct {
	Entity          repos.EntityRepo
	Redirect        repos.RedirectRepo
	RelationshipSet repos.RelationshipSetRepo
	Collection      repos.CollectionRepo
	Lookup          repos.LookupRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Entity:          repos.NewEntityRepo(db, log),
		Redirect:        repos.NewRedirectRepo(db, log),
		RelationshipSet: repos.NewRelationshipSetRepo(db, log),
		Collection:      repos.NewCollectionRepo(db, log),
		Lookup:          repos.NewLookupRepo(db, log),
	}
}
