package entity

import (
	"time"

	"github.com/yungbote/bookbrainz-backend/internal/domain/editor"
	"github.com/yungbote/bookbrainz-backend/internal/domain/lookup"
	"gorm.io/datatypes"
)

// Entity is the shared row behind every entity kind. Columns that only apply
// to one kind are nullable and left empty for the others.
type Entity struct {
	BBID   string `gorm:"column:bbid;primaryKey" json:"bbid"`
	Type   Type   `gorm:"column:type;not null;index" json:"type"`
	DataID *uint  `gorm:"column:data_id" json:"dataId"`

	RevisionID        *uint `gorm:"column:revision_id" json:"revisionId"`
	AliasSetID        *uint `gorm:"column:alias_set_id" json:"aliasSetId"`
	IdentifierSetID   *uint `gorm:"column:identifier_set_id" json:"identifierSetId"`
	RelationshipSetID *uint `gorm:"column:relationship_set_id" json:"relationshipSetId"`
	AnnotationID      *uint `gorm:"column:annotation_id" json:"annotationId"`
	DisambiguationID  *uint `gorm:"column:disambiguation_id" json:"disambiguationId"`
	DefaultAliasID    *uint `gorm:"column:default_alias_id" json:"defaultAliasId"`

	Revision        *EntityRevision  `gorm:"foreignKey:RevisionID" json:"revision,omitempty"`
	AliasSet        *AliasSet        `gorm:"foreignKey:AliasSetID" json:"aliasSet,omitempty"`
	IdentifierSet   *IdentifierSet   `gorm:"foreignKey:IdentifierSetID" json:"identifierSet,omitempty"`
	RelationshipSet *RelationshipSet `gorm:"foreignKey:RelationshipSetID" json:"relationshipSet,omitempty"`
	Annotation      *Annotation      `gorm:"foreignKey:AnnotationID" json:"annotation,omitempty"`
	Disambiguation  *Disambiguation  `gorm:"foreignKey:DisambiguationID" json:"disambiguation,omitempty"`
	DefaultAlias    *Alias           `gorm:"foreignKey:DefaultAliasID" json:"defaultAlias,omitempty"`

	// Author
	AuthorTypeID *uint              `gorm:"column:author_type_id" json:"authorTypeId,omitempty"`
	AuthorType   *lookup.AuthorType `gorm:"foreignKey:AuthorTypeID" json:"authorType,omitempty"`
	GenderID     *uint              `gorm:"column:gender_id" json:"genderId,omitempty"`
	Gender       *lookup.Gender     `gorm:"foreignKey:GenderID" json:"gender,omitempty"`

	// Edition
	EditionGroupBBID *string               `gorm:"column:edition_group_bbid" json:"editionGroupBbid,omitempty"`
	EditionGroup     *Entity               `gorm:"foreignKey:EditionGroupBBID;references:BBID" json:"editionGroup,omitempty"`
	EditionFormatID  *uint                 `gorm:"column:edition_format_id" json:"editionFormatId,omitempty"`
	EditionFormat    *lookup.EditionFormat `gorm:"foreignKey:EditionFormatID" json:"editionFormat,omitempty"`
	EditionStatusID  *uint                 `gorm:"column:edition_status_id" json:"editionStatusId,omitempty"`
	EditionStatus    *lookup.EditionStatus `gorm:"foreignKey:EditionStatusID" json:"editionStatus,omitempty"`

	// EditionGroup
	EditionGroupTypeID *uint                    `gorm:"column:edition_group_type_id" json:"editionGroupTypeId,omitempty"`
	EditionGroupType   *lookup.EditionGroupType `gorm:"foreignKey:EditionGroupTypeID" json:"editionGroupType,omitempty"`

	// Publisher
	PublisherTypeID *uint                 `gorm:"column:publisher_type_id" json:"publisherTypeId,omitempty"`
	PublisherType   *lookup.PublisherType `gorm:"foreignKey:PublisherTypeID" json:"publisherType,omitempty"`

	// Work
	WorkTypeID *uint            `gorm:"column:work_type_id" json:"workTypeId,omitempty"`
	WorkType   *lookup.WorkType `gorm:"foreignKey:WorkTypeID" json:"workType,omitempty"`

	// Series
	SeriesEntityType *string `gorm:"column:series_entity_type" json:"seriesEntityType,omitempty"`

	Deleted       bool               `gorm:"-" json:"deleted,omitempty"`
	ParentAlias   *Alias             `gorm:"-" json:"parentAlias,omitempty"`
	Relationships []RelationshipView `gorm:"-" json:"relationships,omitempty"`
}

func (Entity) TableName() string { return "entity" }

// EntityRevision links an entity to one revision and records the data the
// entity had at that point. DataID is nil for the revision that deleted it.
type EntityRevision struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RevisionID     uint      `gorm:"column:revision_id;not null;index" json:"revisionId"`
	Revision       *Revision `gorm:"foreignKey:RevisionID" json:"revision,omitempty"`
	BBID           string    `gorm:"column:bbid;not null;index" json:"bbid"`
	DataID         *uint     `gorm:"column:data_id" json:"dataId"`
	DefaultAliasID *uint     `gorm:"column:default_alias_id" json:"defaultAliasId"`
	DefaultAlias   *Alias    `gorm:"foreignKey:DefaultAliasID" json:"defaultAlias,omitempty"`
}

func (EntityRevision) TableName() string { return "entity_revision" }

type Revision struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	EditorID  uint           `gorm:"column:editor_id;not null;index" json:"editorId"`
	Editor    *editor.Editor `gorm:"foreignKey:EditorID" json:"editor,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

func (Revision) TableName() string { return "revision" }

type Alias struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	Name       string           `gorm:"column:name;not null" json:"name"`
	SortName   string           `gorm:"column:sort_name;not null" json:"sortName"`
	LanguageID *uint            `gorm:"column:language_id" json:"languageId"`
	Language   *lookup.Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	Primary    bool             `gorm:"column:primary;not null;default:false" json:"primary"`
}

func (Alias) TableName() string { return "alias" }

type AliasSet struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	DefaultAliasID *uint   `gorm:"column:default_alias_id" json:"defaultAliasId"`
	Aliases        []Alias `gorm:"many2many:alias_set__alias" json:"aliases"`
}

func (AliasSet) TableName() string { return "alias_set" }

type Identifier struct {
	ID     uint                   `gorm:"primaryKey" json:"id"`
	TypeID uint                   `gorm:"column:type_id;not null" json:"typeId"`
	Type   *lookup.IdentifierType `gorm:"foreignKey:TypeID" json:"type,omitempty"`
	Value  string                 `gorm:"column:value;not null" json:"value"`
}

func (Identifier) TableName() string { return "identifier" }

type IdentifierSet struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Identifiers []Identifier `gorm:"many2many:identifier_set__identifier" json:"identifiers"`
}

func (IdentifierSet) TableName() string { return "identifier_set" }

// Relationship is a typed, directed edge between two entities. Attributes
// hold ordinal values such as "position" or "number".
type Relationship struct {
	ID         uint                     `gorm:"primaryKey" json:"id"`
	TypeID     uint                     `gorm:"column:type_id;not null" json:"typeId"`
	Type       *lookup.RelationshipType `gorm:"foreignKey:TypeID" json:"type,omitempty"`
	SourceBBID string                   `gorm:"column:source_bbid;not null;index" json:"sourceBbid"`
	TargetBBID string                   `gorm:"column:target_bbid;not null;index" json:"targetBbid"`
	Attributes datatypes.JSON           `gorm:"column:attributes" json:"attributes,omitempty"`
}

func (Relationship) TableName() string { return "relationship" }

type RelationshipSet struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Relationships []Relationship `gorm:"many2many:relationship_set__relationship" json:"relationships"`
}

func (RelationshipSet) TableName() string { return "relationship_set" }

type Annotation struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Content        string    `gorm:"column:content;not null" json:"content"`
	LastRevisionID *uint     `gorm:"column:last_revision_id" json:"lastRevisionId"`
	LastRevision   *Revision `gorm:"foreignKey:LastRevisionID" json:"lastRevision,omitempty"`
}

func (Annotation) TableName() string { return "annotation" }

type Disambiguation struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Comment string `gorm:"column:comment;not null" json:"comment"`
}

func (Disambiguation) TableName() string { return "disambiguation" }

// Redirect points a merged entity at the entity that absorbed it.
type Redirect struct {
	SourceBBID string `gorm:"column:source_bbid;primaryKey" json:"sourceBbid"`
	TargetBBID string `gorm:"column:target_bbid;not null" json:"targetBbid"`
}

func (Redirect) TableName() string { return "entity_redirect" }

// TableModels lists every persisted entity-side table for migrations.
func TableModels() []any {
	return []any{
		&Entity{},
		&EntityRevision{},
		&Revision{},
		&Alias{},
		&AliasSet{},
		&Identifier{},
		&IdentifierSet{},
		&Relationship{},
		&RelationshipSet{},
		&Annotation{},
		&Disambiguation{},
		&Redirect{},
	}
}
