package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/bookbrainz-backend/internal/data/repos/collection"
	"github.com/yungbote/bookbrainz-backend/internal/data/repos/entity"
	"github.com/yungbote/bookbrainz-backend/internal/data/repos/lookup"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

type EntityRepo = entity.EntityRepo
type RedirectRepo = entity.RedirectRepo
type RelationshipSetRepo = entity.RelationshipSetRepo

type CollectionRepo = collection.CollectionRepo

type LookupRepo = lookup.LookupRepo

func NewEntityRepo(db *gorm.DB, baseLog *logger.Logger) EntityRepo {
	return entity.NewEntityRepo(db, baseLog)
}
func NewRedirectRepo(db *gorm.DB, baseLog *logger.Logger) RedirectRepo {
	return entity.NewRedirectRepo(db, baseLog)
}
func NewRelationshipSetRepo(db *gorm.DB, baseLog *logger.Logger) RelationshipSetRepo {
	return entity.NewRelationshipSetRepo(db, baseLog)
}

func NewCollectionRepo(db *gorm.DB, baseLog *logger.Logger) CollectionRepo {
	return collection.NewCollectionRepo(db, baseLog)
}

func NewLookupRepo(db *gorm.DB, baseLog *logger.Logger) LookupRepo {
	return lookup.NewLookupRepo(db, baseLog)
}
