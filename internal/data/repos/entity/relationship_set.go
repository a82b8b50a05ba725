package entity

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/platform/dbctx"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

type RelationshipSetRepo interface {
	// GetByID loads the set with its relationships (ordered by id) and their
	// types. A missing set is nil, nil.
	GetByID(dbc dbctx.Context, id uint) (*types.RelationshipSet, error)
}

type relationshipSetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRelationshipSetRepo(db *gorm.DB, baseLog *logger.Logger) RelationshipSetRepo {
	return &relationshipSetRepo{db: db, log: baseLog.With("repo", "RelationshipSetRepo")}
}

func (r *relationshipSetRepo) GetByID(dbc dbctx.Context, id uint) (*types.RelationshipSet, error) {
	var out types.RelationshipSet
	err := dbc.DB(r.db).
		Preload("Relationships", func(db *gorm.DB) *gorm.DB {
			return db.Order("relationship.id ASC")
		}).
		Preload("Relationships.Type").
		Where("id = ?", id).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
