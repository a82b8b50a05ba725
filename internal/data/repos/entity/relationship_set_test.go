package entity

import (
	"context"
	"testing"

	"github.com/yungbote/bookbrainz-backend/internal/data/repos/testutil"
	types "github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/platform/dbctx"
)

func TestRelationshipSetRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewRelationshipSetRepo(db, testutil.Logger(t))

	ed := testutil.SeedEditor(t, ctx, tx, "relset")
	series := testutil.SeedEntity(t, ctx, tx, ed, types.TypeSeries, "Dune Chronicles")
	w1 := testutil.SeedEntity(t, ctx, tx, ed, types.TypeWork, "Dune")
	w2 := testutil.SeedEntity(t, ctx, tx, ed, types.TypeWork, "Dune Messiah")
	rt := testutil.SeedRelationshipType(t, ctx, tx, "contains", types.TypeSeries, types.TypeWork)

	set := testutil.SeedRelationships(t, ctx, tx, series, rt, []*types.Entity{w1, w2}, []string{`{"position":"1"}`, `{"position":"2"}`})

	got, err := repo.GetByID(dbc, set.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if len(got.Relationships) != 2 {
		t.Fatalf("expected 2 relationships, got %d", len(got.Relationships))
	}
	if got.Relationships[0].ID > got.Relationships[1].ID {
		t.Fatalf("relationships should be ordered by id")
	}
	if got.Relationships[0].Type == nil || got.Relationships[0].Type.Label != "contains" {
		t.Fatalf("relationship type not preloaded")
	}
	if got.Relationships[0].TargetBBID != w1.BBID {
		t.Fatalf("unexpected first target %q", got.Relationships[0].TargetBBID)
	}

	missing, err := repo.GetByID(dbc, set.ID+1000)
	if err != nil || missing != nil {
		t.Fatalf("GetByID(missing): got=%v err=%v", missing, err)
	}
}
