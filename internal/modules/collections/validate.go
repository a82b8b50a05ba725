package collections

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/yungbote/bookbrainz-backend/internal/data/repos"
	"github.com/yungbote/bookbrainz-backend/internal/domain/collection"
	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/platform/apierr"
	"github.com/yungbote/bookbrainz-backend/internal/platform/bbid"
	"github.com/yungbote/bookbrainz-backend/internal/platform/dbctx"
)

// ValidateAdd checks that every candidate exists and has the collection's
// entity type. Type names are compared word-split and lowercased.
func (u Usecases) ValidateAdd(ctx context.Context, coll *collection.View, bbids []string) error {
	if err := checkCandidates(bbids); err != nil {
		return err
	}
	if coll == nil {
		return collectionNotLoaded()
	}
	rows, err := u.deps.Entities.GetByBBIDs(dbctx.Context{Ctx: ctx}, bbids)
	if err != nil {
		return repos.MapError("load candidate entities", err)
	}
	byBBID := make(map[string]*entity.Entity, len(rows))
	for _, e := range rows {
		byBBID[e.BBID] = e
	}
	for _, id := range bbids {
		e, ok := byBBID[id]
		if !ok {
			return apierr.BadRequest("entity_not_found", fmt.Sprintf("%s %s does not exist", coll.EntityType, id))
		}
		if !entity.SameType(string(e.Type), coll.EntityType) {
			return apierr.Conflict("entity_type_mismatch",
				fmt.Sprintf("Cannot add an entity of type %s to a collection of type %s", e.Type, coll.EntityType))
		}
	}
	return nil
}

// ValidateRemove checks that every candidate is already a member. Membership
// is an exact bbid match.
func (u Usecases) ValidateRemove(coll *collection.View, bbids []string) error {
	if err := checkCandidates(bbids); err != nil {
		return err
	}
	if coll == nil {
		return collectionNotLoaded()
	}
	for _, id := range bbids {
		if !coll.HasItem(id) {
			return apierr.Conflict("entity_not_in_collection", fmt.Sprintf("Entity %s is not in collection %s", id, coll.ID))
		}
	}
	return nil
}

func checkCandidates(bbids []string) error {
	if len(bbids) == 0 {
		return apierr.BadRequest("empty_bbids", "BBIDs array is empty")
	}
	if bad, found := bbid.FirstInvalid(bbids); found {
		return apierr.BadRequest("invalid_bbid", "Invalid BBID "+bad)
	}
	return nil
}

func collectionNotLoaded() error {
	return apierr.New(http.StatusInternalServerError, "collection_not_loaded", errors.New("Failed to load collection"))
}
