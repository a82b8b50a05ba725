package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookbrainz-backend/internal/domain/lookup"
	"github.com/yungbote/bookbrainz-backend/internal/http/response"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

type LookupService interface {
	Load(ctx context.Context, kind lookup.Kind) (any, error)
}

type LookupMiddleware struct {
	log     *logger.Logger
	lookups LookupService
}

func NewLookupMiddleware(log *logger.Logger, svc LookupService) *LookupMiddleware {
	return &LookupMiddleware{log: log.With("Middleware", "LookupMiddleware"), lookups: svc}
}

// LoadLookup attaches the full list for each kind to the request data.
func (m *LookupMiddleware) LoadLookup(kinds ...lookup.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd := requestData(c)
		for _, kind := range kinds {
			rows, err := m.lookups.Load(c.Request.Context(), kind)
			if err != nil {
				response.RespondAPIError(c, err)
				return
			}
			rd.SetLookup(kind, rows)
		}
		c.Next()
	}
}
