package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/bookbrainz-backend/internal/domain/collection"
	"github.com/yungbote/bookbrainz-backend/internal/domain/editor"
	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/domain/lookup"
	"github.com/yungbote/bookbrainz-backend/internal/platform/pointers"
)

func SeedEditor(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *editor.Editor {
	tb.Helper()
	e := &editor.Editor{Name: name}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed editor: %v", err)
	}
	return e
}

func SeedRelationshipType(tb testing.TB, ctx context.Context, tx *gorm.DB, label string, source, target entity.Type) *lookup.RelationshipType {
	tb.Helper()
	rt := &lookup.RelationshipType{
		Label:             label,
		SourceEntityType:  string(source),
		TargetEntityType:  string(target),
		LinkPhrase:        label,
		ReverseLinkPhrase: label,
	}
	if err := tx.WithContext(ctx).Create(rt).Error; err != nil {
		tb.Fatalf("seed relationship type: %v", err)
	}
	return rt
}

// SeedEntity creates a live entity of type t with one revision and a default
// alias called name.
func SeedEntity(tb testing.TB, ctx context.Context, tx *gorm.DB, ed *editor.Editor, t entity.Type, name string) *entity.Entity {
	tb.Helper()
	db := tx.WithContext(ctx)

	alias := &entity.Alias{Name: name, SortName: name, Primary: true}
	if err := db.Create(alias).Error; err != nil {
		tb.Fatalf("seed alias: %v", err)
	}
	set := &entity.AliasSet{DefaultAliasID: &alias.ID}
	if err := db.Create(set).Error; err != nil {
		tb.Fatalf("seed alias set: %v", err)
	}
	if err := db.Model(set).Association("Aliases").Append(alias); err != nil {
		tb.Fatalf("seed alias set members: %v", err)
	}

	bbid := uuid.NewString()
	dataID := pointers.Uint(1)
	rev := seedRevision(tb, ctx, tx, ed, bbid, dataID, &alias.ID)

	e := &entity.Entity{
		BBID:           bbid,
		Type:           t,
		DataID:         dataID,
		RevisionID:     &rev.ID,
		AliasSetID:     &set.ID,
		DefaultAliasID: &alias.ID,
	}
	if err := db.Omit(clause.Associations).Create(e).Error; err != nil {
		tb.Fatalf("seed entity: %v", err)
	}
	return e
}

// DeleteEntity records a data-less revision for e and clears its data.
func DeleteEntity(tb testing.TB, ctx context.Context, tx *gorm.DB, ed *editor.Editor, e *entity.Entity) {
	tb.Helper()
	rev := seedRevision(tb, ctx, tx, ed, e.BBID, nil, nil)
	err := tx.WithContext(ctx).Model(&entity.Entity{}).
		Where("bbid = ?", e.BBID).
		Updates(map[string]interface{}{"data_id": nil, "revision_id": rev.ID}).Error
	if err != nil {
		tb.Fatalf("delete entity: %v", err)
	}
	e.DataID = nil
	e.RevisionID = &rev.ID
}

func seedRevision(tb testing.TB, ctx context.Context, tx *gorm.DB, ed *editor.Editor, bbid string, dataID, aliasID *uint) *entity.EntityRevision {
	tb.Helper()
	db := tx.WithContext(ctx)
	r := &entity.Revision{EditorID: ed.ID}
	if err := db.Create(r).Error; err != nil {
		tb.Fatalf("seed revision: %v", err)
	}
	er := &entity.EntityRevision{RevisionID: r.ID, BBID: bbid, DataID: dataID, DefaultAliasID: aliasID}
	if err := db.Create(er).Error; err != nil {
		tb.Fatalf("seed entity revision: %v", err)
	}
	return er
}

func SeedRedirect(tb testing.TB, ctx context.Context, tx *gorm.DB, source, target string) {
	tb.Helper()
	if err := tx.WithContext(ctx).Create(&entity.Redirect{SourceBBID: source, TargetBBID: target}).Error; err != nil {
		tb.Fatalf("seed redirect: %v", err)
	}
}

// SeedRelationships attaches a new relationship set to owner holding one
// relationship per target, in order. attrs[i] may be empty.
func SeedRelationships(tb testing.TB, ctx context.Context, tx *gorm.DB, owner *entity.Entity, rt *lookup.RelationshipType, targets []*entity.Entity, attrs []string) *entity.RelationshipSet {
	tb.Helper()
	db := tx.WithContext(ctx)
	set := &entity.RelationshipSet{}
	if err := db.Create(set).Error; err != nil {
		tb.Fatalf("seed relationship set: %v", err)
	}
	rels := make([]*entity.Relationship, 0, len(targets))
	for i, target := range targets {
		rel := &entity.Relationship{TypeID: rt.ID, SourceBBID: owner.BBID, TargetBBID: target.BBID}
		if i < len(attrs) && attrs[i] != "" {
			rel.Attributes = datatypes.JSON([]byte(attrs[i]))
		}
		if err := db.Omit(clause.Associations).Create(rel).Error; err != nil {
			tb.Fatalf("seed relationship: %v", err)
		}
		rels = append(rels, rel)
	}
	if len(rels) > 0 {
		if err := db.Model(set).Association("Relationships").Append(rels); err != nil {
			tb.Fatalf("seed relationship set members: %v", err)
		}
	}
	if err := db.Model(&entity.Entity{}).Where("bbid = ?", owner.BBID).Update("relationship_set_id", set.ID).Error; err != nil {
		tb.Fatalf("attach relationship set: %v", err)
	}
	owner.RelationshipSetID = &set.ID
	return set
}

func SeedCollection(tb testing.TB, ctx context.Context, tx *gorm.DB, owner *editor.Editor, entityType string, collaborators []*editor.Editor, items []string) *collection.UserCollection {
	tb.Helper()
	db := tx.WithContext(ctx)
	c := &collection.UserCollection{
		ID:         uuid.NewString(),
		OwnerID:    owner.ID,
		Name:       "collection",
		EntityType: entityType,
	}
	if err := db.Omit(clause.Associations).Create(c).Error; err != nil {
		tb.Fatalf("seed collection: %v", err)
	}
	for _, ed := range collaborators {
		row := &collection.Collaborator{CollectionID: c.ID, CollaboratorID: ed.ID}
		if err := db.Omit(clause.Associations).Create(row).Error; err != nil {
			tb.Fatalf("seed collaborator: %v", err)
		}
	}
	for _, bbid := range items {
		row := &collection.Item{CollectionID: c.ID, BBID: bbid}
		if err := db.Create(row).Error; err != nil {
			tb.Fatalf("seed item: %v", err)
		}
	}
	return c
}
