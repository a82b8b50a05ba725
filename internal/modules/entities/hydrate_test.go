package entities

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/domain/lookup"
	"github.com/yungbote/bookbrainz-backend/internal/platform/apierr"
	"github.com/yungbote/bookbrainz-backend/internal/platform/pointers"
)

func TestHydrateNilEntity(t *testing.T) {
	u := New(UsecasesDeps{})
	_, err := u.HydrateRelationships(context.Background(), nil)
	ae, ok := apierr.As(err)
	if !ok || ae.Status != http.StatusInternalServerError || ae.Error() != "Failed to load entity" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHydrateAbsentSet(t *testing.T) {
	u := New(UsecasesDeps{RelationshipSets: &fakeRelationshipSetRepo{sets: map[uint]*entity.RelationshipSet{}}})

	got, err := u.HydrateRelationships(context.Background(), &entity.Entity{BBID: uuid.NewString()})
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("no set id: got=%v err=%v", got, err)
	}
	got, err = u.HydrateRelationships(context.Background(), &entity.Entity{BBID: uuid.NewString(), RelationshipSetID: pointers.Uint(99)})
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("missing set: got=%v err=%v", got, err)
	}
}

func hydrationFixture(n int, ownerType entity.Type) (*entity.Entity, *fakeEntityRepo, *fakeRelationshipSetRepo) {
	owner := &entity.Entity{BBID: uuid.NewString(), Type: ownerType, DataID: pointers.Uint(1), RelationshipSetID: pointers.Uint(1)}
	repo := newFakeEntityRepo(owner)
	repo.jitter = true
	rt := &lookup.RelationshipType{ID: 1, SourceEntityType: string(ownerType), TargetEntityType: "Work"}
	set := &entity.RelationshipSet{ID: 1}
	// stored out of id order on purpose
	for i := n; i >= 1; i-- {
		w := &entity.Entity{BBID: uuid.NewString(), Type: entity.TypeWork, DataID: pointers.Uint(1)}
		repo.rows[w.BBID] = w
		set.Relationships = append(set.Relationships, entity.Relationship{
			ID:         uint(i),
			TypeID:     rt.ID,
			Type:       rt,
			SourceBBID: owner.BBID,
			TargetBBID: w.BBID,
			Attributes: datatypes.JSON(`{"position":"` + strconv.Itoa(n-i+1) + `"}`),
		})
	}
	return owner, repo, &fakeRelationshipSetRepo{sets: map[uint]*entity.RelationshipSet{1: set}}
}

func TestHydrateKeepsInputOrderAndCount(t *testing.T) {
	owner, repo, sets := hydrationFixture(25, entity.TypeAuthor)
	u := New(UsecasesDeps{Entities: repo, RelationshipSets: sets, HydrateConcurrency: 3})

	got, err := u.HydrateRelationships(context.Background(), owner)
	if err != nil {
		t.Fatalf("HydrateRelationships: %v", err)
	}
	stored := sets.sets[1].Relationships
	if len(got) != len(stored) {
		t.Fatalf("want %d views, got %d", len(stored), len(got))
	}
	for i, v := range got {
		if v.ID != stored[i].ID {
			t.Fatalf("view %d has id %d, stored order has %d", i, v.ID, stored[i].ID)
		}
		if v.Source == nil || v.Source.BBID != owner.BBID {
			t.Fatalf("view %d source not hydrated", i)
		}
		if v.Target == nil || v.Target.BBID != stored[i].TargetBBID {
			t.Fatalf("view %d target not hydrated", i)
		}
	}
	if owner.Relationships != nil {
		t.Fatalf("hydration must not mutate the entity")
	}
	if n := repo.typeCalls.Load(); n != 1 {
		t.Fatalf("endpoint types should load in one query, got %d", n)
	}
}

func TestHydrateSeriesKeepsInputOrder(t *testing.T) {
	owner, repo, sets := hydrationFixture(6, entity.TypeSeries)
	// positions descend against the stored order
	for i := range sets.sets[1].Relationships {
		sets.sets[1].Relationships[i].Attributes = datatypes.JSON(`{"position":"` + strconv.Itoa(6-i) + `"}`)
	}
	u := New(UsecasesDeps{Entities: repo, RelationshipSets: sets})

	got, err := u.HydrateRelationships(context.Background(), owner)
	if err != nil {
		t.Fatalf("HydrateRelationships: %v", err)
	}
	for i, v := range got {
		if v.ID != sets.sets[1].Relationships[i].ID {
			t.Fatalf("view %d reordered: id %d", i, v.ID)
		}
	}
}

func TestHydrateAbortsOnEndpointFailure(t *testing.T) {
	owner, repo, sets := hydrationFixture(5, entity.TypeAuthor)
	delete(repo.rows, sets.sets[1].Relationships[2].TargetBBID)
	u := New(UsecasesDeps{Entities: repo, RelationshipSets: sets})

	got, err := u.HydrateRelationships(context.Background(), owner)
	if err == nil || got != nil {
		t.Fatalf("expected no partial result, got=%v err=%v", got, err)
	}
	if !apierr.IsKind(err, apierr.KindUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestHydrateSetStoreError(t *testing.T) {
	u := New(UsecasesDeps{RelationshipSets: &fakeRelationshipSetRepo{err: errors.New("boom")}})
	_, err := u.HydrateRelationships(context.Background(), &entity.Entity{BBID: uuid.NewString(), RelationshipSetID: pointers.Uint(1)})
	if !apierr.IsKind(err, apierr.KindUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestHydrateUsesStoredEndpointType(t *testing.T) {
	owner, repo, sets := hydrationFixture(3, entity.TypeAuthor)
	// the relationship type disagrees with the stored endpoint rows
	wrong := &lookup.RelationshipType{ID: 1, SourceEntityType: "Publisher", TargetEntityType: "Edition"}
	for i := range sets.sets[1].Relationships {
		sets.sets[1].Relationships[i].Type = wrong
	}
	u := New(UsecasesDeps{Entities: repo, RelationshipSets: sets})

	got, err := u.HydrateRelationships(context.Background(), owner)
	if err != nil || len(got) != 3 {
		t.Fatalf("HydrateRelationships: got=%v err=%v", got, err)
	}
	for i, v := range got {
		if v.Source.Type != entity.TypeAuthor || v.Target.Type != entity.TypeWork {
			t.Fatalf("view %d loaded with wrong types: %s -> %s", i, v.Source.Type, v.Target.Type)
		}
	}
}
