package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/bookbrainz-backend/internal/domain/entity"
	"github.com/yungbote/bookbrainz-backend/internal/domain/lookup"
	httpH "github.com/yungbote/bookbrainz-backend/internal/http/handlers"
	httpMW "github.com/yungbote/bookbrainz-backend/internal/http/middleware"
	"github.com/yungbote/bookbrainz-backend/internal/http/response"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string

	// EntityTypes get a page route each; empty means every type.
	EntityTypes []entity.Type

	EntityMiddleware     *httpMW.EntityMiddleware
	CollectionMiddleware *httpMW.CollectionMiddleware
	LookupMiddleware     *httpMW.LookupMiddleware

	EntityHandler     *httpH.EntityHandler
	CollectionHandler *httpH.CollectionHandler
	LookupHandler     *httpH.LookupHandler
	HealthHandler     *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "bookbrainz-backend"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.AttachRequestData())
	r.Use(httpMW.RequestLogger(log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	r.NoRoute(func(c *gin.Context) {
		response.RespondError(c, http.StatusNotFound, "not_found", errNotFound)
	})

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Entity pages: redirect -> load -> hydrate
	if cfg.EntityMiddleware != nil && cfg.EntityHandler != nil {
		types := cfg.EntityTypes
		if len(types) == 0 {
			types = entity.Types()
		}
		em, eh := cfg.EntityMiddleware, cfg.EntityHandler
		for _, t := range types {
			g := r.Group("/"+t.Route()+"/:"+httpMW.BBIDParam,
				em.RedirectedBBID(),
				em.LoadEntity(t, httpMW.EntityLoaderOptions{}),
				em.LoadEntityRelationships(),
			)
			g.GET("", eh.GetEntity)
			g.GET("/relationships", eh.GetRelationships)
		}
	}

	// Collections
	if cfg.CollectionMiddleware != nil && cfg.CollectionHandler != nil {
		cm, ch := cfg.CollectionMiddleware, cfg.CollectionHandler
		g := r.Group("/collection/:"+httpMW.CollectionIDParam, cm.LoadCollection())
		g.GET("", ch.GetCollection)
		g.GET("/items", ch.ListItems)
		g.POST("/add", cm.ValidateCollectionAdd(), ch.AddItems)
		g.POST("/remove", cm.ValidateCollectionRemove(), ch.RemoveItems)
	}

	// Lookups
	if cfg.LookupMiddleware != nil && cfg.LookupHandler != nil {
		api := r.Group("/api/lookups")
		for _, kind := range lookup.Kinds() {
			api.GET("/"+string(kind), cfg.LookupMiddleware.LoadLookup(kind), cfg.LookupHandler.GetLookup(kind))
		}
	}

	return r
}
