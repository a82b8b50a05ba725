package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookbrainz-backend/internal/requestdata"
)

// AttachRequestData gives every request an empty RequestData for the param
// loaders to fill.
func AttachRequestData() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if requestdata.GetRequestData(ctx) == nil {
			ctx = requestdata.WithRequestData(ctx, requestdata.New())
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// requestData returns the request's RequestData, attaching one if an earlier
// middleware did not.
func requestData(c *gin.Context) *requestdata.RequestData {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		rd = requestdata.New()
		c.Request = c.Request.WithContext(requestdata.WithRequestData(c.Request.Context(), rd))
	}
	return rd
}
