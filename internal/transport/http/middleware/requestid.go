package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const KeyRequestID = "X-Request-ID"

// RequestID 复用调用方带来的请求 ID，没有就生成一个；同时回写响应头
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(KeyRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(KeyRequestID, rid)
		c.Header(KeyRequestID, rid)
		c.Next()
	}
}
