package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/http/response"
	"github.com/yungbote/bookbrainz-backend/internal/modules/entities"
	"github.com/yungbote/bookbrainz-backend/internal/platform/apierr"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

// BBIDParam is the route parameter every entity route uses.
const BBIDParam = "bbid"

type EntityService interface {
	ResolveRedirect(ctx context.Context, id string) (string, error)
	LoadEntity(ctx context.Context, in entities.LoadEntityInput) (*entity.Entity, error)
	HydrateRelationships(ctx context.Context, e *entity.Entity) ([]entity.RelationshipView, error)
}

type EntityMiddleware struct {
	log      *logger.Logger
	entities EntityService
}

func NewEntityMiddleware(log *logger.Logger, svc EntityService) *EntityMiddleware {
	return &EntityMiddleware{log: log.With("Middleware", "EntityMiddleware"), entities: svc}
}

// RedirectedBBID sends requests for a merged entity to its canonical bbid
// with a 301. The rest of the URL is kept.
func (m *EntityMiddleware) RedirectedBBID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param(BBIDParam)
		canonical, err := m.entities.ResolveRedirect(c.Request.Context(), id)
		if err != nil {
			response.RespondAPIError(c, err)
			return
		}
		if canonical == id {
			c.Next()
			return
		}
		loc := strings.Replace(c.Request.URL.Path, id, canonical, 1)
		if q := c.Request.URL.RawQuery; q != "" {
			loc += "?" + q
		}
		m.log.Debug("redirecting merged entity", "bbid", id, "canonical", canonical)
		c.Redirect(http.StatusMovedPermanently, loc)
		c.Abort()
	}
}

type EntityLoaderOptions struct {
	AdditionalRelations []string
	NotFoundMessage     string
}

// LoadEntity loads the route's entity of type t into the request data.
func (m *EntityMiddleware) LoadEntity(t entity.Type, opts EntityLoaderOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		e, err := m.entities.LoadEntity(c.Request.Context(), entities.LoadEntityInput{
			Type:                t,
			BBID:                c.Param(BBIDParam),
			AdditionalRelations: opts.AdditionalRelations,
			NotFoundMessage:     opts.NotFoundMessage,
		})
		if err != nil {
			response.RespondAPIError(c, err)
			return
		}
		requestData(c).SetEntity(e)
		c.Next()
	}
}

// LoadEntityRelationships hydrates the relationships of the entity loaded by
// LoadEntity and attaches them to it.
func (m *EntityMiddleware) LoadEntityRelationships() gin.HandlerFunc {
	return func(c *gin.Context) {
		e := requestData(c).Entity()
		if e == nil {
			response.RespondAPIError(c, apierr.New(http.StatusInternalServerError, "entity_not_loaded", errEntityNotLoaded))
			return
		}
		views, err := m.entities.HydrateRelationships(c.Request.Context(), e)
		if err != nil {
			response.RespondAPIError(c, err)
			return
		}
		e.Relationships = views
		c.Next()
	}
}
