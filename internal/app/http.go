package app

import (
	"github.com/yungbote/bookbrainz-backend/internal/http"
	httpH "github.com/yungbote/bookbrainz-backend/internal/http/handlers"
	httpMW "github.com/yungbote/bookbrainz-backend/internal/http/middleware"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

type Middleware struct {
	Entity     *httpMW.EntityMiddleware
	Collection *httpMW.CollectionMiddleware
	Lookup     *httpMW.LookupMiddleware
}

type Handlers struct {
	Health     *httpH.HealthHandler
	Entity     *httpH.EntityHandler
	Collection *httpH.CollectionHandler
	Lookup     *httpH.LookupHandler
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Entity:     httpMW.NewEntityMiddleware(log, services.Entities),
		Collection: httpMW.NewCollectionMiddleware(log, services.Collections),
		Lookup:     httpMW.NewLookupMiddleware(log, services.Lookups),
	}
}

func wireHandlers(log *logger.Logger, services Services, clients Clients) Handlers {
	log.Info("Wiring handlers...")
	pingers := map[string]httpH.Pinger{}
	if clients.DB != nil {
		pingers["db"] = clients.DB
	}
	return Handlers{
		Health:     httpH.NewHealthHandler(log, pingers),
		Entity:     httpH.NewEntityHandler(log),
		Collection: httpH.NewCollectionHandler(log, services.Collections),
		Lookup:     httpH.NewLookupHandler(log),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:                  log,
		ServiceName:          cfg.Otel.ServiceName,
		CORSOrigins:          cfg.CORSOrigins,
		EntityMiddleware:     middleware.Entity,
		CollectionMiddleware: middleware.Collection,
		LookupMiddleware:     middleware.Lookup,
		EntityHandler:        handlers.Entity,
		CollectionHandler:    handlers.Collection,
		LookupHandler:        handlers.Lookup,
		HealthHandler:        handlers.Health,
	})
}
