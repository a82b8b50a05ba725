package entities

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

func TestEmbeddedRegistryMatchesCompiledModels(t *testing.T) {
	r := LoadRegistry(logger.Nop(), "")
	for _, want := range entity.Models() {
		got, err := r.Model(want.Type)
		require.NoError(t, err)
		assert.Equal(t, want.NotFoundMessage, got.NotFoundMessage)
		assert.ElementsMatch(t, want.AdditionalRelations, got.AdditionalRelations, "type %s", want.Type)
	}
}

func TestRegistryOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	body := []byte(`
types:
  - type: Work
    additionalRelations: [WorkType, Revision.Revision.Editor]
    notFoundMessage: No such work
  - type: Magazine
    notFoundMessage: ignored
`)
	require.NoError(t, os.WriteFile(path, body, 0o600))

	r := LoadRegistry(logger.Nop(), path)
	work, err := r.Model(entity.TypeWork)
	require.NoError(t, err)
	assert.Equal(t, "No such work", work.NotFoundMessage)
	assert.Equal(t, []string{"WorkType", "Revision.Revision.Editor"}, work.AdditionalRelations)

	author, err := r.Model(entity.TypeAuthor)
	require.NoError(t, err)
	assert.Equal(t, "Author not found", author.NotFoundMessage)
}

func TestRegistryBadOverrideFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("types: [unterminated"), 0o600))

	r := LoadRegistry(logger.Nop(), path)
	m, err := r.Model(entity.TypeEdition)
	require.NoError(t, err)
	assert.Equal(t, "Edition not found", m.NotFoundMessage)

	r = LoadRegistry(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = r.Model(entity.TypeSeries)
	require.NoError(t, err)

	_, err = r.Model(entity.Type("Magazine"))
	assert.ErrorIs(t, err, entity.ErrUnknownType)
}
