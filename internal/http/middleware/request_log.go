package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookbrainz-backend/internal/platform/ctxutil"
	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
	"github.com/yungbote/bookbrainz-backend/internal/requestdata"
)

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		rd := requestdata.GetRequestData(c.Request.Context())

		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		fields = append(fields, ctxutil.LogFields(c.Request.Context())...)
		if e := rd.Entity(); e != nil {
			fields = append(fields, "bbid", e.BBID, "entity_type", string(e.Type))
		}
		if coll := rd.Collection(); coll != nil {
			fields = append(fields, "collection_id", coll.ID)
		}
		if last := c.Errors.Last(); last != nil {
			fields = append(fields, "error", last.Err.Error())
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}
