package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelForEveryType(t *testing.T) {
	models := Models()
	require.Len(t, models, len(Types()))
	for i, m := range models {
		assert.Equal(t, Types()[i], m.Type)
		assert.NotEmpty(t, m.NotFoundMessage)
	}

	ed, err := ModelFor(TypeEdition)
	require.NoError(t, err)
	assert.Equal(t, []string{"EditionGroup.DefaultAlias", "EditionFormat", "EditionStatus"}, ed.AdditionalRelations)
	assert.Equal(t, "edition", ed.Route())
}

func TestModelForUnknown(t *testing.T) {
	_, err := ModelFor(Type("Collection"))
	require.ErrorIs(t, err, ErrUnknownType)
	assert.Equal(t, "unrecognized entity type: 'Collection'", err.Error())

	_, err = ParseType("edition")
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestRelationsDeduplicates(t *testing.T) {
	m, err := ModelFor(TypeAuthor)
	require.NoError(t, err)
	rels := m.Relations("DefaultAlias", "Gender", "Revision.Revision.Editor")
	assert.Equal(t, BaseRelations, rels[:len(BaseRelations)])
	assert.Equal(t, []string{"AuthorType", "Gender", "Revision.Revision.Editor"}, rels[len(BaseRelations):])
}

func TestLink(t *testing.T) {
	id := "ba2fe4a1-2b8a-4a8e-8e9a-0c1e7c6a5f10"
	assert.Equal(t, "/edition-group/"+id, Link(TypeEditionGroup, id))
	assert.Equal(t, "/author/"+id, Link(TypeAuthor, id))
}
