package entity

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/platform/dbctx"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

type RedirectRepo interface {
	// GetTarget returns the direct redirect target of bbid, if any.
	GetTarget(dbc dbctx.Context, bbid string) (string, bool, error)
	Upsert(dbc dbctx.Context, sourceBBID, targetBBID string) error
}

type redirectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRedirectRepo(db *gorm.DB, baseLog *logger.Logger) RedirectRepo {
	return &redirectRepo{db: db, log: baseLog.With("repo", "RedirectRepo")}
}

func (r *redirectRepo) GetTarget(dbc dbctx.Context, bbid string) (string, bool, error) {
	var row types.Redirect
	err := dbc.DB(r.db).Where("source_bbid = ?", bbid).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.TargetBBID, true, nil
}

func (r *redirectRepo) Upsert(dbc dbctx.Context, sourceBBID, targetBBID string) error {
	row := types.Redirect{SourceBBID: sourceBBID, TargetBBID: targetBBID}
	return dbc.DB(r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "source_bbid"}},
		DoUpdates: clause.AssignmentColumns([]string{"target_bbid"}),
	}).Create(&row).Error
}
