package lookup

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/bookbrainz-backend/internal/domain/lookup"
	"github.com/yungbote/bookbrainz-backend/internal/platform/dbctx"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

type LookupRepo interface {
	// List returns every row of the table behind kind as a typed slice
	// (e.g. []types.Gender), in primary-key order.
	List(dbc dbctx.Context, kind types.Kind) (any, error)
	ListGenders(dbc dbctx.Context) ([]types.Gender, error)
	ListLanguages(dbc dbctx.Context) ([]types.Language, error)
}

type lookupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLookupRepo(db *gorm.DB, baseLog *logger.Logger) LookupRepo {
	return &lookupRepo{db: db, log: baseLog.With("repo", "LookupRepo")}
}

func (r *lookupRepo) List(dbc dbctx.Context, kind types.Kind) (any, error) {
	switch kind {
	case types.KindAuthorTypes:
		return listAll[types.AuthorType](r.db, dbc)
	case types.KindEditionFormats:
		return listAll[types.EditionFormat](r.db, dbc)
	case types.KindEditionStatuses:
		return listAll[types.EditionStatus](r.db, dbc)
	case types.KindIdentifierTypes:
		return listAll[types.IdentifierType](r.db, dbc)
	case types.KindEditionGroupTypes:
		return listAll[types.EditionGroupType](r.db, dbc)
	case types.KindPublisherTypes:
		return listAll[types.PublisherType](r.db, dbc)
	case types.KindWorkTypes:
		return listAll[types.WorkType](r.db, dbc)
	case types.KindRelationshipTypes:
		return listAll[types.RelationshipType](r.db, dbc)
	case types.KindGenders:
		return r.ListGenders(dbc)
	case types.KindLanguages:
		return r.ListLanguages(dbc)
	default:
		return nil, fmt.Errorf("unknown lookup kind %q", kind)
	}
}

func (r *lookupRepo) ListGenders(dbc dbctx.Context) ([]types.Gender, error) {
	return listAll[types.Gender](r.db, dbc)
}

func (r *lookupRepo) ListLanguages(dbc dbctx.Context) ([]types.Language, error) {
	return listAll[types.Language](r.db, dbc)
}

func listAll[T any](db *gorm.DB, dbc dbctx.Context) ([]T, error) {
	out := []T{}
	if err := dbc.DB(db).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
