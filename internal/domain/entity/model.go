package entity

import "fmt"

// BaseRelations are preloaded for every entity page.
var BaseRelations = []string{
	"AliasSet.Aliases.Language",
	"Annotation.LastRevision",
	"DefaultAlias",
	"Disambiguation",
	"IdentifierSet.Identifiers.Type",
	"RelationshipSet.Relationships.Type",
	"Revision.Revision",
}

// Model is the data-access description of one entity type: which extra
// associations it carries and how pages refer to it.
type Model struct {
	Type                Type
	AdditionalRelations []string
	NotFoundMessage     string
}

// Route is the kebab-case path segment of the model's type.
func (m Model) Route() string { return m.Type.Route() }

// Relations returns BaseRelations followed by the model's additional
// relations and any extra paths, without duplicates.
func (m Model) Relations(extra ...string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(BaseRelations)+len(m.AdditionalRelations)+len(extra))
	for _, group := range [][]string{BaseRelations, m.AdditionalRelations, extra} {
		for _, rel := range group {
			if rel == "" || seen[rel] {
				continue
			}
			seen[rel] = true
			out = append(out, rel)
		}
	}
	return out
}

// ModelFor resolves t to its model. Every Type constant has a case; anything
// else is ErrUnknownType.
func ModelFor(t Type) (Model, error) {
	switch t {
	case TypeAuthor:
		return Model{
			Type:                t,
			AdditionalRelations: []string{"AuthorType", "Gender"},
			NotFoundMessage:     "Author not found",
		}, nil
	case TypeEdition:
		return Model{
			Type:                t,
			AdditionalRelations: []string{"EditionGroup.DefaultAlias", "EditionFormat", "EditionStatus"},
			NotFoundMessage:     "Edition not found",
		}, nil
	case TypeEditionGroup:
		return Model{
			Type:                t,
			AdditionalRelations: []string{"EditionGroupType"},
			NotFoundMessage:     "Edition Group not found",
		}, nil
	case TypePublisher:
		return Model{
			Type:                t,
			AdditionalRelations: []string{"PublisherType"},
			NotFoundMessage:     "Publisher not found",
		}, nil
	case TypeSeries:
		return Model{
			Type:                t,
			AdditionalRelations: nil,
			NotFoundMessage:     "Series not found",
		}, nil
	case TypeWork:
		return Model{
			Type:                t,
			AdditionalRelations: []string{"WorkType"},
			NotFoundMessage:     "Work not found",
		}, nil
	default:
		return Model{}, fmt.Errorf("%w: '%s'", ErrUnknownType, string(t))
	}
}

// Models returns the model of every entity type.
func Models() []Model {
	out := make([]Model, 0, len(Types()))
	for _, t := range Types() {
		m, err := ModelFor(t)
		if err != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Link is the page path of an entity.
func Link(t Type, id string) string {
	return "/" + t.Route() + "/" + id
}
