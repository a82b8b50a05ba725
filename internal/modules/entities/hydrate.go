package entities

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/bookbrainz-backend/internal/data/repos"
	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/observability"
	"github.com/yungbote/bookbrainz-backend/internal/platform/apierr"
	"github.com/yungbote/bookbrainz-backend/internal/platform/dbctx"
)

// HydrateRelationships loads the relationship set of e and both endpoints of
// every relationship. Endpoints are fetched concurrently; the result keeps the
// order the set was stored in. Any failure discards the whole result.
func (u Usecases) HydrateRelationships(ctx context.Context, e *entity.Entity) (out []entity.RelationshipView, err error) {
	if e == nil {
		return nil, apierr.New(http.StatusInternalServerError, "entity_not_loaded", errors.New("Failed to load entity"))
	}
	ctx, span := observability.StartSpan(ctx, "entities.HydrateRelationships", "bbid", e.BBID)
	defer func() { observability.EndSpan(span, err) }()

	if e.RelationshipSetID == nil {
		return []entity.RelationshipView{}, nil
	}
	set, err := u.deps.RelationshipSets.GetByID(dbctx.Context{Ctx: ctx}, *e.RelationshipSetID)
	if err != nil {
		return nil, repos.MapError("load relationship set", err)
	}
	if set == nil || len(set.Relationships) == 0 {
		return []entity.RelationshipView{}, nil
	}
	rels := set.Relationships

	typeByID, err := u.deps.Entities.GetTypes(dbctx.Context{Ctx: ctx}, endpointBBIDs(rels))
	if err != nil {
		return nil, repos.MapError("load endpoint types", err)
	}

	sources := make([]*entity.Entity, len(rels))
	targets := make([]*entity.Entity, len(rels))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.deps.HydrateConcurrency)
	for i, rel := range rels {
		g.Go(func() error {
			src, err := u.loadEndpoint(gctx, rel.SourceBBID, typeByID)
			if err != nil {
				return fmt.Errorf("relationship %d source: %w", rel.ID, err)
			}
			sources[i] = src
			return nil
		})
		g.Go(func() error {
			tgt, err := u.loadEndpoint(gctx, rel.TargetBBID, typeByID)
			if err != nil {
				return fmt.Errorf("relationship %d target: %w", rel.ID, err)
			}
			targets[i] = tgt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apierr.Upstream("hydrate_relationships", err)
	}

	out = make([]entity.RelationshipView, len(rels))
	for i, rel := range rels {
		out[i] = entity.NewRelationshipView(rel, sources[i], targets[i])
	}
	return out, nil
}

func endpointBBIDs(rels []entity.Relationship) []string {
	seen := make(map[string]struct{}, len(rels)*2)
	out := make([]string, 0, len(rels)*2)
	for _, rel := range rels {
		for _, id := range []string{rel.SourceBBID, rel.TargetBBID} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// loadEndpoint fetches bbid as its stored type, with its default alias and
// type relations.
func (u Usecases) loadEndpoint(ctx context.Context, id string, typeByID map[string]entity.Type) (*entity.Entity, error) {
	t, ok := typeByID[id]
	if !ok {
		return nil, fmt.Errorf("entity %s: %w", id, gorm.ErrRecordNotFound)
	}
	model, err := u.deps.Registry.Model(t)
	if err != nil {
		return nil, err
	}
	relations := append([]string{"DefaultAlias"}, model.AdditionalRelations...)
	return u.deps.Entities.GetByTypeAndBBID(dbctx.Context{Ctx: ctx}, t, id, relations)
}
