package middleware

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookbrainz-backend/internal/domain/collection"
	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/domain/lookup"
	"github.com/yungbote/bookbrainz-backend/internal/http/response"
	"github.com/yungbote/bookbrainz-backend/internal/modules/entities"
)

type fakeEntityService struct {
	redirects map[string]string
	entities  map[string]*entity.Entity
	views     []entity.RelationshipView
	err       error
	lastLoad  entities.LoadEntityInput
}

func (f *fakeEntityService) ResolveRedirect(ctx context.Context, id string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if to, ok := f.redirects[id]; ok {
		return to, nil
	}
	return id, nil
}

func (f *fakeEntityService) LoadEntity(ctx context.Context, in entities.LoadEntityInput) (*entity.Entity, error) {
	f.lastLoad = in
	if f.err != nil {
		return nil, f.err
	}
	return f.entities[in.BBID], nil
}

func (f *fakeEntityService) HydrateRelationships(ctx context.Context, e *entity.Entity) ([]entity.RelationshipView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.views, nil
}

type fakeCollectionService struct {
	colls     map[string]*collection.View
	err       error
	validated []string
}

func (f *fakeCollectionService) LoadCollection(ctx context.Context, id string) (*collection.View, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.colls[id], nil
}

func (f *fakeCollectionService) ValidateAdd(ctx context.Context, coll *collection.View, bbids []string) error {
	f.validated = bbids
	return f.err
}

func (f *fakeCollectionService) ValidateRemove(coll *collection.View, bbids []string) error {
	f.validated = bbids
	return f.err
}

type fakeLookupService struct {
	rows  map[lookup.Kind]any
	err   error
	calls []lookup.Kind
}

func (f *fakeLookupService) Load(ctx context.Context, kind lookup.Kind) (any, error) {
	f.calls = append(f.calls, kind)
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[kind], nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachRequestData())
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.APIError {
	t.Helper()
	var env response.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error envelope: %v (%s)", err, rec.Body.String())
	}
	return env.Error
}
