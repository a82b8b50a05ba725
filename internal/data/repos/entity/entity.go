package entity

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/platform/dbctx"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

type EntityRepo interface {
	// GetByTypeAndBBID loads one entity of type t and preloads relations.
	// A missing row is gorm.ErrRecordNotFound.
	GetByTypeAndBBID(dbc dbctx.Context, t types.Type, bbid string, relations []string) (*types.Entity, error)
	GetByBBIDs(dbc dbctx.Context, bbids []string) ([]*types.Entity, error)
	// GetTypes returns the stored type of each bbid that exists.
	GetTypes(dbc dbctx.Context, bbids []string) (map[string]types.Type, error)
	// GetParentAlias returns the default alias of the newest revision of bbid
	// that still had data, or nil when there is none.
	GetParentAlias(dbc dbctx.Context, bbid string) (*types.Alias, error)
	Create(dbc dbctx.Context, rows []*types.Entity) ([]*types.Entity, error)
}

type entityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEntityRepo(db *gorm.DB, baseLog *logger.Logger) EntityRepo {
	return &entityRepo{db: db, log: baseLog.With("repo", "EntityRepo")}
}

func (r *entityRepo) GetByTypeAndBBID(dbc dbctx.Context, t types.Type, bbid string, relations []string) (*types.Entity, error) {
	q := dbc.DB(r.db)
	for _, rel := range relations {
		q = q.Preload(rel)
	}
	var out types.Entity
	if err := q.Where("bbid = ? AND type = ?", bbid, t).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *entityRepo) GetByBBIDs(dbc dbctx.Context, bbids []string) ([]*types.Entity, error) {
	var out []*types.Entity
	if len(bbids) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).Where("bbid IN ?", bbids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *entityRepo) GetTypes(dbc dbctx.Context, bbids []string) (map[string]types.Type, error) {
	out := make(map[string]types.Type, len(bbids))
	if len(bbids) == 0 {
		return out, nil
	}
	var rows []types.Entity
	if err := dbc.DB(r.db).Select("bbid", "type").Where("bbid IN ?", bbids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.BBID] = row.Type
	}
	return out, nil
}

func (r *entityRepo) GetParentAlias(dbc dbctx.Context, bbid string) (*types.Alias, error) {
	var rev types.EntityRevision
	err := dbc.DB(r.db).
		Preload("DefaultAlias").
		Where("bbid = ? AND data_id IS NOT NULL", bbid).
		Order("revision_id DESC").
		First(&rev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rev.DefaultAlias, nil
}

func (r *entityRepo) Create(dbc dbctx.Context, rows []*types.Entity) ([]*types.Entity, error) {
	if len(rows) == 0 {
		return []*types.Entity{}, nil
	}
	if err := dbc.DB(r.db).Omit(clause.Associations).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
