package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bridgemart-backend/internal/core/auth"
	"bridgemart-backend/internal/domain"
)

const (
	KeyUserID   = "userId"
	KeyRole     = "role"
	KeyDistrict = "district"
)

// AuthJWT 解析 Bearer token，把身份三要素放入上下文；requireRole 非空时限定角色
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyRole, claims.Role)
		c.Set(KeyDistrict, claims.District)
		c.Next()
	}
}

// ActorFrom handler 显式取出身份，再传进 service；不让 service 摸上下文
func ActorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:       c.GetString(KeyUserID),
		Role:     c.GetString(KeyRole),
		District: c.GetString(KeyDistrict),
	}
}

// RequireRole 分组级角色门禁（在 AuthJWT 之后使用）
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(KeyRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
	}
}
