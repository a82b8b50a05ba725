package entities

import (
	"context"
	"strings"

	"github.com/yungbote/bookbrainz-backend/internal/data/repos"
	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/observability"
	"github.com/yungbote/bookbrainz-backend/internal/platform/apierr"
	"github.com/yungbote/bookbrainz-backend/internal/platform/bbid"
	"github.com/yungbote/bookbrainz-backend/internal/platform/dbctx"
)

type LoadEntityInput struct {
	Type entity.Type
	BBID string
	// AdditionalRelations are preloaded on top of the type's own relations.
	AdditionalRelations []string
	// NotFoundMessage overrides the type's default message.
	NotFoundMessage string
}

// LoadEntity fetches one entity of in.Type with its page relations. An entity
// without data is returned flagged Deleted, with the alias it last had.
func (u Usecases) LoadEntity(ctx context.Context, in LoadEntityInput) (out *entity.Entity, err error) {
	if !bbid.Valid(in.BBID) {
		return nil, apierr.BadRequest("invalid_bbid", "Invalid BBID")
	}
	model, err := u.deps.Registry.Model(in.Type)
	if err != nil {
		return nil, apierr.BadRequest("unknown_entity_type", err.Error())
	}
	msg := strings.TrimSpace(in.NotFoundMessage)
	if msg == "" {
		msg = model.NotFoundMessage
	}

	ctx, span := observability.StartSpan(ctx, "entities.LoadEntity", "bbid", in.BBID, "type", string(in.Type))
	defer func() { observability.EndSpan(span, err) }()

	dbc := dbctx.Context{Ctx: ctx}
	e, ferr := u.deps.Entities.GetByTypeAndBBID(dbc, in.Type, in.BBID, model.Relations(in.AdditionalRelations...))
	if ferr != nil {
		if repos.IsNotFound(ferr) {
			u.deps.Log.Debug("entity not found", "bbid", in.BBID, "type", string(in.Type))
		} else {
			u.deps.Log.Warn("entity fetch failed", "bbid", in.BBID, "type", string(in.Type), "error", ferr)
		}
		return nil, apierr.NotFound("entity_not_found", msg)
	}
	if e.DataID == nil {
		e.Deleted = true
		parent, perr := u.deps.Entities.GetParentAlias(dbc, in.BBID)
		if perr != nil {
			u.deps.Log.Debug("parent alias fetch failed", "bbid", in.BBID, "error", perr)
			return nil, apierr.NotFound("entity_not_found", msg)
		}
		e.ParentAlias = parent
	}
	return e, nil
}
