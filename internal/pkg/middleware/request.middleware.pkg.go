package middleware

import (
	"time"

	types "ashok-storefront/internal/common/type"
	"ashok-storefront/internal/pkg/helper"
	"ashok-storefront/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
	SendKey         = "send"
)

// RequestInit tags every request with an id and logs it once served
func RequestInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			gid, err := gonanoid.New()
			if err != nil {
				logger.Warning.Printf("Failed to generate request id: %v", err)
			} else {
				id = "req_" + gid
			}
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		logger.HTTP.Printf("%s %s %d %s id=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			id,
		)
	}
}

// ResponseInit installs the "send" closure handlers use to reply
func ResponseInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(SendKey, func(r *types.Response) {
			r = helper.ParseResponse(r)
			c.AbortWithStatusJSON(r.Code, helper.ToResponseAPI(r, c.GetString(RequestIDKey)))
		})
		c.Next()
	}
}
