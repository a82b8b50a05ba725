package entity

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/yungbote/bookbrainz-backend/internal/domain/lookup"
	"gorm.io/datatypes"
)

// RelationshipView is a relationship with both endpoints loaded. Views are
// built fresh by hydration; the stored Relationship rows are left untouched.
type RelationshipView struct {
	ID         uint                     `json:"id"`
	TypeID     uint                     `json:"typeId"`
	Type       *lookup.RelationshipType `json:"type,omitempty"`
	Source     *Entity                  `json:"source"`
	Target     *Entity                  `json:"target"`
	Attributes datatypes.JSON           `json:"attributes,omitempty"`
}

// NewRelationshipView pairs r with its loaded endpoints.
func NewRelationshipView(r Relationship, source, target *Entity) RelationshipView {
	return RelationshipView{
		ID:         r.ID,
		TypeID:     r.TypeID,
		Type:       r.Type,
		Source:     source,
		Target:     target,
		Attributes: r.Attributes,
	}
}

// Attribute returns the named attribute as text, or "" when absent.
func (v RelationshipView) Attribute(name string) string {
	return attributeText(v.Attributes, name)
}

func attributeText(raw datatypes.JSON, name string) string {
	if len(raw) == 0 {
		return ""
	}
	var attrs map[string]any
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return ""
	}
	val, ok := attrs[name]
	if !ok || val == nil {
		return ""
	}
	switch t := val.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case map[string]any:
		// {"value": {"textValue": "3"}} as stored by the attribute editor
		if inner, ok := t["value"].(map[string]any); ok {
			if s, ok := inner["textValue"].(string); ok {
				return s
			}
		}
		return ""
	default:
		return fmt.Sprint(t)
	}
}
