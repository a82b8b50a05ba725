package collections

import (
	"context"

	"github.com/yungbote/bookbrainz-backend/internal/domain/collection"
	"github.com/yungbote/bookbrainz-backend/internal/observability"
	"github.com/yungbote/bookbrainz-backend/internal/platform/apierr"
	"github.com/yungbote/bookbrainz-backend/internal/platform/bbid"
	"github.com/yungbote/bookbrainz-backend/internal/platform/dbctx"
)

// LoadCollection fetches a collection with owner, collaborators and items.
func (u Usecases) LoadCollection(ctx context.Context, id string) (out *collection.View, err error) {
	if !bbid.Valid(id) {
		return nil, apierr.BadRequest("invalid_collection_id", "Invalid Collection ID")
	}
	ctx, span := observability.StartSpan(ctx, "collections.LoadCollection", "collection_id", id)
	defer func() { observability.EndSpan(span, err) }()

	row, ferr := u.deps.Collections.GetByID(dbctx.Context{Ctx: ctx}, id)
	if ferr != nil {
		u.deps.Log.Debug("collection fetch failed", "collection_id", id, "error", ferr)
		return nil, apierr.NotFound("collection_not_found", "Collection Not Found")
	}
	return collection.NewView(row), nil
}
