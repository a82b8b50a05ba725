package collection

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/bookbrainz-backend/internal/domain/collection"
	"github.com/yungbote/bookbrainz-backend/internal/platform/dbctx"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

type CollectionRepo interface {
	// GetByID loads the collection with owner, collaborators and items.
	// A missing row is gorm.ErrRecordNotFound.
	GetByID(dbc dbctx.Context, id string) (*types.UserCollection, error)
	// ListItems returns up to limit items, newest first, skipping offset.
	ListItems(dbc dbctx.Context, id string, offset, limit int) ([]types.Item, error)
	// AddItems inserts memberships; existing ones are left alone.
	AddItems(dbc dbctx.Context, id string, bbids []string) error
	RemoveItems(dbc dbctx.Context, id string, bbids []string) error
	Create(dbc dbctx.Context, row *types.UserCollection) error
}

type collectionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCollectionRepo(db *gorm.DB, baseLog *logger.Logger) CollectionRepo {
	return &collectionRepo{db: db, log: baseLog.With("repo", "CollectionRepo")}
}

func (r *collectionRepo) GetByID(dbc dbctx.Context, id string) (*types.UserCollection, error) {
	var out types.UserCollection
	err := dbc.DB(r.db).
		Preload("Owner").
		Preload("Collaborators.Collaborator").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("added_at ASC").Order("bbid ASC")
		}).
		Where("id = ?", id).
		First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *collectionRepo) ListItems(dbc dbctx.Context, id string, offset, limit int) ([]types.Item, error) {
	var out []types.Item
	q := dbc.DB(r.db).
		Where("collection_id = ?", id).
		Order("added_at DESC").
		Order("bbid ASC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *collectionRepo) AddItems(dbc dbctx.Context, id string, bbids []string) error {
	if len(bbids) == 0 {
		return nil
	}
	now := time.Now().UTC()
	rows := make([]types.Item, 0, len(bbids))
	for _, bbid := range bbids {
		rows = append(rows, types.Item{CollectionID: id, BBID: bbid, AddedAt: now})
	}
	t := dbc.DB(r.db)
	if err := t.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return err
	}
	return r.touch(t, id, now)
}

func (r *collectionRepo) RemoveItems(dbc dbctx.Context, id string, bbids []string) error {
	if len(bbids) == 0 {
		return nil
	}
	t := dbc.DB(r.db)
	if err := t.Where("collection_id = ? AND bbid IN ?", id, bbids).Delete(&types.Item{}).Error; err != nil {
		return err
	}
	return r.touch(t, id, time.Now().UTC())
}

func (r *collectionRepo) Create(dbc dbctx.Context, row *types.UserCollection) error {
	return dbc.DB(r.db).Omit(clause.Associations).Create(row).Error
}

func (r *collectionRepo) touch(t *gorm.DB, id string, at time.Time) error {
	return t.Model(&types.UserCollection{}).Where("id = ?", id).UpdateColumn("last_modified", at).Error
}
