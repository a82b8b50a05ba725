package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookbrainz-backend/internal/domain/lookup"
	"github.com/yungbote/bookbrainz-backend/internal/http/response"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
	"github.com/yungbote/bookbrainz-backend/internal/requestdata"
)

type LookupHandler struct {
	log *logger.Logger
}

func NewLookupHandler(log *logger.Logger) *LookupHandler {
	return &LookupHandler{log: log.With("handler", "LookupHandler")}
}

// GetLookup serves the list attached by middleware.LoadLookup(kind).
//
// GET /api/lookups/{kind}
func (h *LookupHandler) GetLookup(kind lookup.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, _ := requestdata.GetRequestData(c.Request.Context()).Lookup(kind)
		if rows == nil {
			rows = []any{}
		}
		response.RespondOK(c, gin.H{"kind": kind, "items": rows})
	}
}
