package entities

import (
	"context"
	"fmt"

	"github.com/yungbote/bookbrainz-backend/internal/data/repos"
	"github.com/yungbote/bookbrainz-backend/internal/observability"
	"github.com/yungbote/bookbrainz-backend/internal/platform/apierr"
	"github.com/yungbote/bookbrainz-backend/internal/platform/bbid"
	"github.com/yungbote/bookbrainz-backend/internal/platform/dbctx"
)

// ResolveRedirect follows entity_redirect rows from id until it reaches a
// bbid with no redirect. Resolving the result again returns it unchanged.
func (u Usecases) ResolveRedirect(ctx context.Context, id string) (canonical string, err error) {
	if !bbid.Valid(id) {
		return "", apierr.BadRequest("invalid_bbid", "Invalid bbid: "+id)
	}
	ctx, span := observability.StartSpan(ctx, "entities.ResolveRedirect", "bbid", id)
	defer func() { observability.EndSpan(span, err) }()

	start := id
	if u.deps.RedirectCache != nil {
		cached, ok, cerr := u.deps.RedirectCache.Get(ctx, id)
		if cerr != nil {
			u.deps.Log.Warn("redirect cache read failed", "bbid", id, "error", cerr)
		} else if ok && bbid.Valid(cached) {
			start = cached
		}
	}

	canonical, err = u.followRedirects(ctx, id, start)
	if err != nil {
		return "", err
	}
	// start is either id or the cached canonical; only store changes
	if canonical != id && canonical != start && u.deps.RedirectCache != nil {
		if cerr := u.deps.RedirectCache.Set(ctx, id, canonical); cerr != nil {
			u.deps.Log.Warn("redirect cache write failed", "bbid", id, "error", cerr)
		}
	}
	return canonical, nil
}

func (u Usecases) followRedirects(ctx context.Context, origin, start string) (string, error) {
	dbc := dbctx.Context{Ctx: ctx}
	seen := map[string]bool{origin: true, start: true}
	cur := start
	for hops := 0; ; hops++ {
		next, ok, err := u.deps.Redirects.GetTarget(dbc, cur)
		if err != nil {
			return "", repos.MapError("resolve redirect", err)
		}
		if !ok {
			return cur, nil
		}
		if seen[next] {
			return "", apierr.Upstream("redirect_cycle", fmt.Errorf("redirect cycle from %s at %s", origin, next))
		}
		if hops+1 > u.deps.MaxRedirectHops {
			return "", apierr.Upstream("redirect_too_deep", fmt.Errorf("redirect chain from %s exceeds %d hops", origin, u.deps.MaxRedirectHops))
		}
		seen[next] = true
		cur = next
	}
}
