package collections

import (
	"sort"

	"gorm.io/gorm"

	"github.com/yungbote/bookbrainz-backend/internal/domain/collection"
	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/platform/dbctx"
)

type fakeCollectionRepo struct {
	rows    map[string]*collection.UserCollection
	added   map[string][]string
	removed map[string][]string
	listArg [3]int
	err     error
}

func newFakeCollectionRepo(rows ...*collection.UserCollection) *fakeCollectionRepo {
	r := &fakeCollectionRepo{
		rows:    map[string]*collection.UserCollection{},
		added:   map[string][]string{},
		removed: map[string][]string{},
	}
	for _, c := range rows {
		r.rows[c.ID] = c
	}
	return r
}

func (r *fakeCollectionRepo) GetByID(dbc dbctx.Context, id string) (*collection.UserCollection, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeCollectionRepo) ListItems(dbc dbctx.Context, id string, offset, limit int) ([]collection.Item, error) {
	r.listArg = [3]int{offset, limit, 1}
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	items := append([]collection.Item(nil), c.Items...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].BBID < items[j].BBID })
	if offset >= len(items) {
		return []collection.Item{}, nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (r *fakeCollectionRepo) AddItems(dbc dbctx.Context, id string, bbids []string) error {
	if r.err != nil {
		return r.err
	}
	r.added[id] = append(r.added[id], bbids...)
	return nil
}

func (r *fakeCollectionRepo) RemoveItems(dbc dbctx.Context, id string, bbids []string) error {
	if r.err != nil {
		return r.err
	}
	r.removed[id] = append(r.removed[id], bbids...)
	return nil
}

func (r *fakeCollectionRepo) Create(dbc dbctx.Context, row *collection.UserCollection) error {
	r.rows[row.ID] = row
	return nil
}

type fakeEntityRepo struct {
	rows  map[string]*entity.Entity
	calls int
}

func (r *fakeEntityRepo) GetByTypeAndBBID(dbc dbctx.Context, t entity.Type, bbid string, relations []string) (*entity.Entity, error) {
	r.calls++
	e, ok := r.rows[bbid]
	if !ok || e.Type != t {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeEntityRepo) GetByBBIDs(dbc dbctx.Context, bbids []string) ([]*entity.Entity, error) {
	r.calls++
	out := []*entity.Entity{}
	for _, id := range bbids {
		if e, ok := r.rows[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEntityRepo) GetTypes(dbc dbctx.Context, bbids []string) (map[string]entity.Type, error) {
	out := map[string]entity.Type{}
	for _, id := range bbids {
		if e, ok := r.rows[id]; ok {
			out[id] = e.Type
		}
	}
	return out, nil
}

func (r *fakeEntityRepo) GetParentAlias(dbc dbctx.Context, bbid string) (*entity.Alias, error) {
	return nil, nil
}

func (r *fakeEntityRepo) Create(dbc dbctx.Context, rows []*entity.Entity) ([]*entity.Entity, error) {
	return rows, nil
}
