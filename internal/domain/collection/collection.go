// Package collection models user collections: named, typed lists of entities
// owned by one editor and optionally shared with collaborators.
package collection

import (
	"time"

	"github.com/yungbote/bookbrainz-backend/internal/domain/editor"
)

// UserCollection holds entities of a single type. ID uses the BBID format.
type UserCollection struct {
	ID            string         `gorm:"column:id;primaryKey" json:"id"`
	OwnerID       uint           `gorm:"column:owner_id;not null;index" json:"ownerId"`
	Owner         *editor.Editor `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Name          string         `gorm:"column:name;not null" json:"name"`
	Description   string         `gorm:"column:description" json:"description"`
	EntityType    string         `gorm:"column:entity_type;not null" json:"entityType"`
	Public        bool           `gorm:"column:public;not null;default:false" json:"public"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	LastModified  time.Time      `gorm:"autoUpdateTime" json:"lastModified"`
	Collaborators []Collaborator `gorm:"foreignKey:CollectionID;references:ID" json:"collaborators"`
	Items         []Item         `gorm:"foreignKey:CollectionID;references:ID" json:"items"`
}

func (UserCollection) TableName() string { return "user_collection" }

type Collaborator struct {
	CollectionID   string         `gorm:"column:collection_id;primaryKey" json:"collectionId"`
	CollaboratorID uint           `gorm:"column:collaborator_id;primaryKey" json:"collaboratorId"`
	Collaborator   *editor.Editor `gorm:"foreignKey:CollaboratorID" json:"collaborator,omitempty"`
}

func (Collaborator) TableName() string { return "user_collection_collaborator" }

type Item struct {
	CollectionID string    `gorm:"column:collection_id;primaryKey" json:"collectionId"`
	BBID         string    `gorm:"column:bbid;primaryKey" json:"bbid"`
	AddedAt      time.Time `gorm:"autoCreateTime" json:"addedAt"`
}

func (Item) TableName() string { return "user_collection_item" }

// TableModels lists the collection tables for migrations.
func TableModels() []any {
	return []any{&UserCollection{}, &Collaborator{}, &Item{}}
}
