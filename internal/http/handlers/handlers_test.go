package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/bookbrainz-backend/internal/domain/collection"
	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/domain/lookup"
	"github.com/yungbote/bookbrainz-backend/internal/http/middleware"
	"github.com/yungbote/bookbrainz-backend/internal/modules/collections"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
	"github.com/yungbote/bookbrainz-backend/internal/requestdata"
)

// withRequestData attaches rd the way middleware.AttachRequestData does.
func withRequestData(rd *requestdata.RequestData) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(requestdata.WithRequestData(c.Request.Context(), rd))
		c.Next()
	}
}

func serve(t *testing.T, r *gin.Engine, method, path string) (int, map[string]json.RawMessage) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	out := map[string]json.RawMessage{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode body: %v (%s)", err, rec.Body.String())
		}
	}
	return rec.Code, out
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestEntityHandler(t *testing.T) {
	e := &entity.Entity{BBID: uuid.NewString(), Type: entity.TypeSeries}
	rd := requestdata.New()
	rd.SetEntity(e)
	h := NewEntityHandler(logger.Nop())

	r := newRouter()
	r.GET("/series/:bbid", withRequestData(rd), h.GetEntity)
	r.GET("/series/:bbid/relationships", withRequestData(rd), h.GetRelationships)
	r.GET("/empty/:bbid", withRequestData(requestdata.New()), h.GetEntity)

	status, body := serve(t, r, http.MethodGet, "/series/"+e.BBID)
	if status != http.StatusOK || body["entity"] == nil {
		t.Fatalf("entity response: %d %v", status, body)
	}
	if string(body["link"]) != `"/series/`+e.BBID+`"` {
		t.Fatalf("link: %s", body["link"])
	}
	status, body = serve(t, r, http.MethodGet, "/series/"+e.BBID+"/relationships")
	if status != http.StatusOK || string(body["relationships"]) != "[]" {
		t.Fatalf("relationships response: %d %s", status, body["relationships"])
	}
	status, _ = serve(t, r, http.MethodGet, "/empty/"+e.BBID)
	if status != http.StatusInternalServerError {
		t.Fatalf("missing entity: want 500 got %d", status)
	}
}

func TestEntityHandlerOrdersSeriesByPosition(t *testing.T) {
	views := func(positions ...string) []entity.RelationshipView {
		out := make([]entity.RelationshipView, 0, len(positions))
		for i, p := range positions {
			out = append(out, entity.RelationshipView{ID: uint(i + 1), Attributes: datatypes.JSON(`{"position":"` + p + `"}`)})
		}
		return out
	}
	series := &entity.Entity{BBID: uuid.NewString(), Type: entity.TypeSeries, Relationships: views("10", "2", "1")}
	author := &entity.Entity{BBID: uuid.NewString(), Type: entity.TypeAuthor, Relationships: views("10", "2", "1")}
	h := NewEntityHandler(logger.Nop())

	ids := func(e *entity.Entity) []uint {
		rd := requestdata.New()
		rd.SetEntity(e)
		r := newRouter()
		r.GET("/x/:bbid/relationships", withRequestData(rd), h.GetRelationships)
		status, body := serve(t, r, http.MethodGet, "/x/"+e.BBID+"/relationships")
		if status != http.StatusOK {
			t.Fatalf("status %d", status)
		}
		var got []entity.RelationshipView
		if err := json.Unmarshal(body["relationships"], &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		out := []uint{}
		for _, v := range got {
			out = append(out, v.ID)
		}
		return out
	}

	if got := ids(series); fmt.Sprint(got) != "[3 2 1]" {
		t.Fatalf("series order: %v", got)
	}
	if got := ids(author); fmt.Sprint(got) != "[1 2 3]" {
		t.Fatalf("author order should be untouched: %v", got)
	}
	if series.Relationships[0].ID != 1 {
		t.Fatalf("handler must not reorder the loaded entity")
	}
}

type fakeItemsService struct {
	from, size int
	added      []string
	removed    []string
	err        error
}

func (f *fakeItemsService) ListItems(ctx context.Context, coll *collection.View, from, size int) (collections.ItemsPage, error) {
	f.from, f.size = from, size
	return collections.ItemsPage{Items: []collection.Item{}, From: from, Size: size, NextEnabled: true}, f.err
}

func (f *fakeItemsService) AddItems(ctx context.Context, coll *collection.View, bbids []string) error {
	f.added = bbids
	return f.err
}

func (f *fakeItemsService) RemoveItems(ctx context.Context, coll *collection.View, bbids []string) error {
	f.removed = bbids
	return f.err
}

func TestCollectionHandler(t *testing.T) {
	coll := &collection.View{ID: uuid.NewString(), Name: "Favourites"}
	rd := requestdata.New()
	rd.SetCollection(coll)
	svc := &fakeItemsService{}
	h := NewCollectionHandler(logger.Nop(), svc)

	r := newRouter()
	g := r.Group("/collection/:collectionId", withRequestData(rd))
	g.GET("", h.GetCollection)
	g.GET("/items", h.ListItems)
	g.POST("/remove", func(c *gin.Context) {
		middleware.SetBBIDs(c, []string{"a"})
	}, h.RemoveItems)

	status, body := serve(t, r, http.MethodGet, "/collection/"+coll.ID)
	if status != http.StatusOK || body["collection"] == nil {
		t.Fatalf("collection response: %d %v", status, body)
	}

	status, body = serve(t, r, http.MethodGet, "/collection/"+coll.ID+"/items?from=40&size=abc")
	if status != http.StatusOK || string(body["nextEnabled"]) != "true" {
		t.Fatalf("items response: %d %v", status, body)
	}
	if svc.from != 40 || svc.size != collections.DefaultPageSize {
		t.Fatalf("paging args: from=%d size=%d", svc.from, svc.size)
	}

	status, _ = serve(t, r, http.MethodPost, "/collection/"+coll.ID+"/remove")
	if status != http.StatusOK || len(svc.removed) != 1 {
		t.Fatalf("remove: %d %v", status, svc.removed)
	}

	svc.err = errors.New("db down")
	status, _ = serve(t, r, http.MethodGet, "/collection/"+coll.ID+"/items")
	if status != http.StatusInternalServerError {
		t.Fatalf("store failure: want 500 got %d", status)
	}
}

func TestLookupHandler(t *testing.T) {
	rd := requestdata.New()
	rd.SetLookup(lookup.KindGenders, []lookup.Gender{{ID: 1, Name: "Female"}})
	h := NewLookupHandler(logger.Nop())

	r := newRouter()
	r.GET("/api/lookups/genders", withRequestData(rd), h.GetLookup(lookup.KindGenders))
	r.GET("/api/lookups/languages", withRequestData(rd), h.GetLookup(lookup.KindLanguages))

	status, body := serve(t, r, http.MethodGet, "/api/lookups/genders")
	if status != http.StatusOK || string(body["items"]) != `[{"id":1,"name":"Female"}]` {
		t.Fatalf("genders: %d %s", status, body["items"])
	}
	status, body = serve(t, r, http.MethodGet, "/api/lookups/languages")
	if status != http.StatusOK || string(body["items"]) != "[]" {
		t.Fatalf("languages: %d %s", status, body["items"])
	}
}

func TestHealthCheck(t *testing.T) {
	healthy := NewHealthHandler(logger.Nop(), map[string]Pinger{
		"db": PingFunc(func(context.Context) error { return nil }),
	})
	down := NewHealthHandler(logger.Nop(), map[string]Pinger{
		"db": PingFunc(func(context.Context) error { return errors.New("refused") }),
	})
	r := newRouter()
	r.GET("/healthcheck", healthy.HealthCheck)
	r.GET("/down", down.HealthCheck)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthy: %d %s", rec.Code, rec.Body.String())
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/down", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("down: %d", rec.Code)
	}
}
