package entities

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/platform/dbctx"
)

type fakeEntityRepo struct {
	mu        sync.Mutex
	rows      map[string]*entity.Entity
	parents   map[string]*entity.Alias
	fetchErr  error
	jitter    bool
	calls     atomic.Int64
	typeCalls atomic.Int64
	relations [][]string
}

func newFakeEntityRepo(rows ...*entity.Entity) *fakeEntityRepo {
	r := &fakeEntityRepo{rows: map[string]*entity.Entity{}, parents: map[string]*entity.Alias{}}
	for _, e := range rows {
		r.rows[e.BBID] = e
	}
	return r
}

func (r *fakeEntityRepo) GetByTypeAndBBID(dbc dbctx.Context, t entity.Type, bbid string, relations []string) (*entity.Entity, error) {
	r.calls.Add(1)
	if r.jitter {
		time.Sleep(time.Duration(rand.Intn(3)) * time.Millisecond)
	}
	if err := dbc.Ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.relations = append(r.relations, relations)
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	e, ok := r.rows[bbid]
	if !ok || e.Type != t {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEntityRepo) GetByBBIDs(dbc dbctx.Context, bbids []string) ([]*entity.Entity, error) {
	r.calls.Add(1)
	out := []*entity.Entity{}
	for _, id := range bbids {
		if e, ok := r.rows[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEntityRepo) GetTypes(dbc dbctx.Context, bbids []string) (map[string]entity.Type, error) {
	r.calls.Add(1)
	r.typeCalls.Add(1)
	out := map[string]entity.Type{}
	for _, id := range bbids {
		if e, ok := r.rows[id]; ok {
			out[id] = e.Type
		}
	}
	return out, nil
}

func (r *fakeEntityRepo) GetParentAlias(dbc dbctx.Context, bbid string) (*entity.Alias, error) {
	r.calls.Add(1)
	return r.parents[bbid], nil
}

func (r *fakeEntityRepo) Create(dbc dbctx.Context, rows []*entity.Entity) ([]*entity.Entity, error) {
	for _, e := range rows {
		r.rows[e.BBID] = e
	}
	return rows, nil
}

type fakeRedirectRepo struct {
	targets map[string]string
	err     error
	calls   int
}

func (r *fakeRedirectRepo) GetTarget(dbc dbctx.Context, bbid string) (string, bool, error) {
	r.calls++
	if r.err != nil {
		return "", false, r.err
	}
	t, ok := r.targets[bbid]
	return t, ok, nil
}

func (r *fakeRedirectRepo) Upsert(dbc dbctx.Context, source, target string) error {
	r.targets[source] = target
	return nil
}

type fakeRelationshipSetRepo struct {
	sets map[uint]*entity.RelationshipSet
	err  error
}

func (r *fakeRelationshipSetRepo) GetByID(dbc dbctx.Context, id uint) (*entity.RelationshipSet, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.sets[id], nil
}

type fakeRedirectCache struct {
	vals   map[string]string
	getErr error
	sets   int
}

func (c *fakeRedirectCache) Get(ctx context.Context, bbid string) (string, bool, error) {
	if c.getErr != nil {
		return "", false, c.getErr
	}
	v, ok := c.vals[bbid]
	return v, ok, nil
}

func (c *fakeRedirectCache) Set(ctx context.Context, bbid, canonical string) error {
	c.sets++
	c.vals[bbid] = canonical
	return nil
}
