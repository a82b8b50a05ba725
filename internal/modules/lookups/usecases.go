package lookups

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/yungbote/bookbrainz-backend/internal/data/repos"
	"github.com/yungbote/bookbrainz-backend/internal/domain/lookup"
	"github.com/yungbote/bookbrainz-backend/internal/platform/apierr"
	"github.com/yungbote/bookbrainz-backend/internal/platform/dbctx"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

type UsecasesDeps struct {
	Log     *logger.Logger
	Lookups repos.LookupRepo
}

type Usecases struct {
	deps UsecasesDeps
}

func New(deps UsecasesDeps) Usecases {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	deps.Log = deps.Log.With("usecases", "lookups")
	return Usecases{deps: deps}
}

// Load returns every row of the lookup table for kind. Genders come back in
// id order; languages most frequent first, then by name.
func (u Usecases) Load(ctx context.Context, kind lookup.Kind) (any, error) {
	if _, err := lookup.ParseKind(string(kind)); err != nil {
		return nil, apierr.New(http.StatusNotFound, "unknown_lookup", err)
	}
	dbc := dbctx.Context{Ctx: ctx}
	switch kind {
	case lookup.KindGenders:
		rows, err := u.deps.Lookups.ListGenders(dbc)
		if err != nil {
			return nil, repos.MapError("load genders", err)
		}
		SortGenders(rows)
		return rows, nil
	case lookup.KindLanguages:
		rows, err := u.deps.Lookups.ListLanguages(dbc)
		if err != nil {
			return nil, repos.MapError("load languages", err)
		}
		SortLanguages(rows)
		return rows, nil
	default:
		rows, err := u.deps.Lookups.List(dbc, kind)
		if err != nil {
			return nil, repos.MapError("load "+string(kind), err)
		}
		return rows, nil
	}
}

func SortGenders(rows []lookup.Gender) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
}

func SortLanguages(rows []lookup.Language) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Frequency != rows[j].Frequency {
			return rows[i].Frequency > rows[j].Frequency
		}
		return strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
	})
}
