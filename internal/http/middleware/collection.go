package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/yungbote/bookbrainz-backend/internal/domain/collection"
	"github.com/yungbote/bookbrainz-backend/internal/http/response"
	"github.com/yungbote/bookbrainz-backend/internal/platform/apierr"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

const (
	// CollectionIDParam is the route parameter every collection route uses.
	CollectionIDParam = "collectionId"

	bbidsKey = "collection_bbids"
)

var errEntityNotLoaded = errors.New("Failed to load entity")

type CollectionService interface {
	LoadCollection(ctx context.Context, id string) (*collection.View, error)
	ValidateAdd(ctx context.Context, coll *collection.View, bbids []string) error
	ValidateRemove(coll *collection.View, bbids []string) error
}

type CollectionMiddleware struct {
	log         *logger.Logger
	collections CollectionService
}

func NewCollectionMiddleware(log *logger.Logger, svc CollectionService) *CollectionMiddleware {
	return &CollectionMiddleware{log: log.With("Middleware", "CollectionMiddleware"), collections: svc}
}

// LoadCollection loads the route's collection into the request data.
func (m *CollectionMiddleware) LoadCollection() gin.HandlerFunc {
	return func(c *gin.Context) {
		coll, err := m.collections.LoadCollection(c.Request.Context(), c.Param(CollectionIDParam))
		if err != nil {
			response.RespondAPIError(c, err)
			return
		}
		requestData(c).SetCollection(coll)
		c.Next()
	}
}

// ValidateCollectionAdd checks the body's bbids can join the loaded
// collection. The accepted list is available through BBIDs.
func (m *CollectionMiddleware) ValidateCollectionAdd() gin.HandlerFunc {
	return m.validate(func(c *gin.Context, coll *collection.View, bbids []string) error {
		return m.collections.ValidateAdd(c.Request.Context(), coll, bbids)
	})
}

// ValidateCollectionRemove checks every bbid in the body is a member of the
// loaded collection.
func (m *CollectionMiddleware) ValidateCollectionRemove() gin.HandlerFunc {
	return m.validate(func(c *gin.Context, coll *collection.View, bbids []string) error {
		return m.collections.ValidateRemove(coll, bbids)
	})
}

func (m *CollectionMiddleware) validate(check func(*gin.Context, *collection.View, []string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		bbids, err := readBBIDs(c)
		if err != nil {
			response.RespondAPIError(c, err)
			return
		}
		if err := check(c, requestData(c).Collection(), bbids); err != nil {
			response.RespondAPIError(c, err)
			return
		}
		SetBBIDs(c, bbids)
		c.Next()
	}
}

func SetBBIDs(c *gin.Context, bbids []string) { c.Set(bbidsKey, bbids) }

// BBIDs returns the candidate list accepted by a collection validator.
func BBIDs(c *gin.Context) []string {
	v, ok := c.Get(bbidsKey)
	if !ok {
		return nil
	}
	bbids, _ := v.([]string)
	return bbids
}

type bbidsBody struct {
	BBIDs []string `json:"bbids"`
}

// readBBIDs treats a missing body like an empty list so the validator reports
// it the usual way.
func readBBIDs(c *gin.Context) ([]string, error) {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil, nil
	}
	var body bbidsBody
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, apierr.BadRequest("invalid_body", "Invalid request body")
	}
	return body.BBIDs, nil
}
