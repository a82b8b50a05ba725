package collection

import (
	"time"

	"github.com/yungbote/bookbrainz-backend/internal/domain/editor"
)

// CollaboratorOption is the {id, text} pair entity search fields expect.
type CollaboratorOption struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// View is a loaded collection shaped for pages and API responses.
type View struct {
	ID            string               `json:"id"`
	OwnerID       uint                 `json:"ownerId"`
	Owner         *editor.Editor       `json:"owner,omitempty"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	EntityType    string               `json:"entityType"`
	Public        bool                 `json:"public"`
	CreatedAt     time.Time            `json:"createdAt"`
	LastModified  time.Time            `json:"lastModified"`
	Collaborators []CollaboratorOption `json:"collaborators"`
	Items         []Item               `json:"items"`
}

// NewView reshapes c. Collaborator rows whose editor was not loaded are skipped.
func NewView(c *UserCollection) *View {
	if c == nil {
		return nil
	}
	collaborators := make([]CollaboratorOption, 0, len(c.Collaborators))
	for _, cc := range c.Collaborators {
		if cc.Collaborator == nil {
			continue
		}
		collaborators = append(collaborators, CollaboratorOption{ID: cc.Collaborator.ID, Text: cc.Collaborator.Name})
	}
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return &View{
		ID:            c.ID,
		OwnerID:       c.OwnerID,
		Owner:         c.Owner,
		Name:          c.Name,
		Description:   c.Description,
		EntityType:    c.EntityType,
		Public:        c.Public,
		CreatedAt:     c.CreatedAt,
		LastModified:  c.LastModified,
		Collaborators: collaborators,
		Items:         items,
	}
}

// HasItem reports whether bbid is a member. The match is exact.
func (v *View) HasItem(bbid string) bool {
	if v == nil {
		return false
	}
	for _, it := range v.Items {
		if it.BBID == bbid {
			return true
		}
	}
	return false
}
