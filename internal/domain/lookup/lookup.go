// Package lookup holds the small reference tables that entity forms and pages
// offer as choices (types, formats, genders, languages, ...).
package lookup

type AuthorType struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label;not null" json:"label"`
}

func (AuthorType) TableName() string { return "author_type" }

type EditionFormat struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label;not null" json:"label"`
}

func (EditionFormat) TableName() string { return "edition_format" }

type EditionStatus struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label;not null" json:"label"`
}

func (EditionStatus) TableName() string { return "edition_status" }

type EditionGroupType struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label;not null" json:"label"`
}

func (EditionGroupType) TableName() string { return "edition_group_type" }

type PublisherType struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label;not null" json:"label"`
}

func (PublisherType) TableName() string { return "publisher_type" }

type WorkType struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:label;not null" json:"label"`
}

func (WorkType) TableName() string { return "work_type" }

// IdentifierType describes an external identifier scheme (ISBN, Wikidata, ...).
type IdentifierType struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Label           string `gorm:"column:label;not null" json:"label"`
	EntityType      string `gorm:"column:entity_type;not null" json:"entityType"`
	DisplayTemplate string `gorm:"column:display_template" json:"displayTemplate,omitempty"`
	DetectionRegex  string `gorm:"column:detection_regex" json:"detectionRegex,omitempty"`
	ValidationRegex string `gorm:"column:validation_regex" json:"validationRegex,omitempty"`
}

func (IdentifierType) TableName() string { return "identifier_type" }

type RelationshipType struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Label             string `gorm:"column:label;not null" json:"label"`
	SourceEntityType  string `gorm:"column:source_entity_type;not null" json:"sourceEntityType"`
	TargetEntityType  string `gorm:"column:target_entity_type;not null" json:"targetEntityType"`
	LinkPhrase        string `gorm:"column:link_phrase" json:"linkPhrase"`
	ReverseLinkPhrase string `gorm:"column:reverse_link_phrase" json:"reverseLinkPhrase"`
}

func (RelationshipType) TableName() string { return "relationship_type" }

type Gender struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:name;not null" json:"name"`
}

func (Gender) TableName() string { return "gender" }

// Language frequency counts how often the language is picked; higher sorts first.
type Language struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"column:name;not null" json:"name"`
	IsoCode1  string `gorm:"column:iso_code_1" json:"isoCode1,omitempty"`
	IsoCode3  string `gorm:"column:iso_code_3" json:"isoCode3,omitempty"`
	Frequency int    `gorm:"column:frequency;not null;default:0" json:"frequency"`
}

func (Language) TableName() string { return "language" }

// Models lists every lookup table, for migrations.
func Models() []any {
	return []any{
		&AuthorType{},
		&EditionFormat{},
		&EditionStatus{},
		&EditionGroupType{},
		&PublisherType{},
		&WorkType{},
		&IdentifierType{},
		&RelationshipType{},
		&Gender{},
		&Language{},
	}
}
