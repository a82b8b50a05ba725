package collections

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/bookbrainz-backend/internal/data/repos"
	"github.com/yungbote/bookbrainz-backend/internal/domain/collection"
	"github.com/yungbote/bookbrainz-backend/internal/platform/dbctx"
)

// AddItems inserts candidates that passed ValidateAdd. Members already in the
// collection are left as they are.
func (u Usecases) AddItems(ctx context.Context, coll *collection.View, bbids []string) error {
	if coll == nil {
		return collectionNotLoaded()
	}
	err := u.inTx(ctx, func(dbc dbctx.Context) error {
		return u.deps.Collections.AddItems(dbc, coll.ID, bbids)
	})
	if err != nil {
		return repos.MapError("add collection items", err)
	}
	u.deps.Log.Info("collection items added", "collection_id", coll.ID, "count", len(bbids))
	return nil
}

// RemoveItems deletes candidates that passed ValidateRemove.
func (u Usecases) RemoveItems(ctx context.Context, coll *collection.View, bbids []string) error {
	if coll == nil {
		return collectionNotLoaded()
	}
	err := u.inTx(ctx, func(dbc dbctx.Context) error {
		return u.deps.Collections.RemoveItems(dbc, coll.ID, bbids)
	})
	if err != nil {
		return repos.MapError("remove collection items", err)
	}
	u.deps.Log.Info("collection items removed", "collection_id", coll.ID, "count", len(bbids))
	return nil
}

type ItemsPage struct {
	Items       []collection.Item `json:"items"`
	From        int               `json:"from"`
	Size        int               `json:"size"`
	NextEnabled bool              `json:"nextEnabled"`
}

// ListItems returns one page of items, newest first. It asks the store for
// one extra row to tell whether a next page exists.
func (u Usecases) ListItems(ctx context.Context, coll *collection.View, from, size int) (ItemsPage, error) {
	if coll == nil {
		return ItemsPage{}, collectionNotLoaded()
	}
	from, size = clampPage(from, size)
	rows, err := u.deps.Collections.ListItems(dbctx.Context{Ctx: ctx}, coll.ID, from, size+1)
	if err != nil {
		return ItemsPage{}, repos.MapError("list collection items", err)
	}
	items, next := NextEnabled(rows, size)
	return ItemsPage{Items: items, From: from, Size: size, NextEnabled: next}, nil
}

// NextEnabled trims rows to size and reports whether anything was cut.
func NextEnabled[T any](rows []T, size int) ([]T, bool) {
	if rows == nil {
		rows = []T{}
	}
	if len(rows) > size {
		return rows[:size], true
	}
	return rows, false
}

func clampPage(from, size int) (int, int) {
	if from < 0 {
		from = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return from, size
}

func (u Usecases) inTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if u.deps.DB == nil {
		return fn(dbctx.Context{Ctx: ctx})
	}
	return u.deps.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}
