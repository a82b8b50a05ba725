package entities

import (
	"context"

	"github.com/yungbote/bookbrainz-backend/internal/data/repos"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

const (
	DefaultMaxRedirectHops    = 32
	DefaultHydrateConcurrency = 8
)

// RedirectCache memoises bbid -> canonical bbid.
type RedirectCache interface {
	Get(ctx context.Context, bbid string) (string, bool, error)
	Set(ctx context.Context, bbid, canonical string) error
}

type UsecasesDeps struct {
	Log *logger.Logger

	Entities         repos.EntityRepo
	Redirects        repos.RedirectRepo
	RelationshipSets repos.RelationshipSetRepo

	// RedirectCache is optional.
	RedirectCache RedirectCache
	Registry      *Registry

	MaxRedirectHops    int
	HydrateConcurrency int
}

type Usecases struct {
	deps UsecasesDeps
}

func New(deps UsecasesDeps) Usecases {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	deps.Log = deps.Log.With("usecases", "entities")
	if deps.Registry == nil {
		deps.Registry = DefaultRegistry()
	}
	if deps.MaxRedirectHops <= 0 {
		deps.MaxRedirectHops = DefaultMaxRedirectHops
	}
	if deps.HydrateConcurrency <= 0 {
		deps.HydrateConcurrency = DefaultHydrateConcurrency
	}
	return Usecases{deps: deps}
}

func (u Usecases) WithLog(log *logger.Logger) Usecases {
	u.deps.Log = log
	return u
}

// Registry exposes the entity-type models the usecases load with.
func (u Usecases) Registry() *Registry { return u.deps.Registry }
