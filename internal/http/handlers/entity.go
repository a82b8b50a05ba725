package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/http/response"
	"github.com/yungbote/bookbrainz-backend/internal/platform/apierr"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
	"github.com/yungbote/bookbrainz-backend/internal/requestdata"
)

type EntityHandler struct {
	log *logger.Logger
}

func NewEntityHandler(log *logger.Logger) *EntityHandler {
	return &EntityHandler{log: log.With("handler", "EntityHandler")}
}

// GET /{type}/:bbid
func (h *EntityHandler) GetEntity(c *gin.Context) {
	e, ok := loadedEntity(c)
	if !ok {
		return
	}
	page := *e
	page.Relationships = displayOrder(e)
	response.RespondOK(c, gin.H{"entity": &page, "link": entity.Link(e.Type, e.BBID)})
}

// GET /{type}/:bbid/relationships
func (h *EntityHandler) GetRelationships(c *gin.Context) {
	e, ok := loadedEntity(c)
	if !ok {
		return
	}
	response.RespondOK(c, gin.H{"relationships": displayOrder(e)})
}

// displayOrder returns a copy of the hydrated relationships. Series list their
// members by position; everything else keeps the loaded order.
func displayOrder(e *entity.Entity) []entity.RelationshipView {
	views := append([]entity.RelationshipView{}, e.Relationships...)
	if e.Type == entity.TypeSeries {
		entity.SortRelationshipsByOrdinal(views, entity.OrdinalAttribute)
	}
	return views
}

func loadedEntity(c *gin.Context) (*entity.Entity, bool) {
	e := requestdata.GetRequestData(c.Request.Context()).Entity()
	if e == nil {
		response.RespondAPIError(c, apierr.New(http.StatusInternalServerError, "entity_not_loaded", errors.New("Failed to load entity")))
		return nil, false
	}
	return e, true
}
