package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookbrainz-backend/internal/domain/collection"
	"github.com/yungbote/bookbrainz-backend/internal/http/middleware"
	"github.com/yungbote/bookbrainz-backend/internal/http/response"
	"github.com/yungbote/bookbrainz-backend/internal/modules/collections"
	"github.com/yungbote/bookbrainz-backend/internal/platform/apierr"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
	"github.com/yungbote/bookbrainz-backend/internal/requestdata"
)

type CollectionItemsService interface {
	ListItems(ctx context.Context, coll *collection.View, from, size int) (collections.ItemsPage, error)
	AddItems(ctx context.Context, coll *collection.View, bbids []string) error
	RemoveItems(ctx context.Context, coll *collection.View, bbids []string) error
}

type CollectionHandler struct {
	log         *logger.Logger
	collections CollectionItemsService
}

func NewCollectionHandler(log *logger.Logger, svc CollectionItemsService) *CollectionHandler {
	return &CollectionHandler{log: log.With("handler", "CollectionHandler"), collections: svc}
}

// GET /collection/:collectionId
func (h *CollectionHandler) GetCollection(c *gin.Context) {
	coll, ok := loadedCollection(c)
	if !ok {
		return
	}
	response.RespondOK(c, gin.H{"collection": coll})
}

// GET /collection/:collectionId/items?from=&size=
func (h *CollectionHandler) ListItems(c *gin.Context) {
	coll, ok := loadedCollection(c)
	if !ok {
		return
	}
	from := queryInt(c, "from", 0)
	size := queryInt(c, "size", collections.DefaultPageSize)
	page, err := h.collections.ListItems(c.Request.Context(), coll, from, size)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, page)
}

// POST /collection/:collectionId/add
func (h *CollectionHandler) AddItems(c *gin.Context) {
	coll, ok := loadedCollection(c)
	if !ok {
		return
	}
	bbids := middleware.BBIDs(c)
	if err := h.collections.AddItems(c.Request.Context(), coll, bbids); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"collectionId": coll.ID, "bbids": bbids})
}

// POST /collection/:collectionId/remove
func (h *CollectionHandler) RemoveItems(c *gin.Context) {
	coll, ok := loadedCollection(c)
	if !ok {
		return
	}
	bbids := middleware.BBIDs(c)
	if err := h.collections.RemoveItems(c.Request.Context(), coll, bbids); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"collectionId": coll.ID, "bbids": bbids})
}

func loadedCollection(c *gin.Context) (*collection.View, bool) {
	coll := requestdata.GetRequestData(c.Request.Context()).Collection()
	if coll == nil {
		response.RespondAPIError(c, apierr.New(http.StatusInternalServerError, "collection_not_loaded", errors.New("Failed to load collection")))
		return nil, false
	}
	return coll, true
}

// queryInt falls back to def when the parameter is missing or not a number.
func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
