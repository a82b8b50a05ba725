package collections

import (
	"gorm.io/gorm"

	"github.com/yungbote/bookbrainz-backend/internal/data/repos"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type UsecasesDeps struct {
	// DB opens transactions for mutations; nil runs them without one.
	DB  *gorm.DB
	Log *logger.Logger

	Collections repos.CollectionRepo
	Entities    repos.EntityRepo
}

type Usecases struct {
	deps UsecasesDeps
}

func New(deps UsecasesDeps) Usecases {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	deps.Log = deps.Log.With("usecases", "collections")
	return Usecases{deps: deps}
}

func (u Usecases) WithLog(log *logger.Logger) Usecases {
	u.deps.Log = log
	return u
}
