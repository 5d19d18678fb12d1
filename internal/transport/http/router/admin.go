package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bridgemart-backend/internal/core/auth"
	"bridgemart-backend/internal/domain"
	"bridgemart-backend/internal/transport/http/handler"
	mdw "bridgemart-backend/internal/transport/http/middleware"
)

// NewAdminEngine 管理端路由：/admin/v1 全程要求 admin 角色
func NewAdminEngine(l *zap.Logger, jwter *auth.JWTer, adminH *handler.AdminHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		ginzap.Ginzap(l, time.RFC3339, true),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, domain.RoleAdmin))

	admin.GET("/users", adminH.ListUsers)
	admin.GET("/users/pending/count", adminH.PendingCount)
	admin.POST("/users/:id/approve", adminH.Approve)
	admin.POST("/users/:id/reject", adminH.Reject)
	admin.POST("/users/:id/activate", adminH.Activate)
	admin.POST("/users/:id/deactivate", adminH.Deactivate)
	admin.DELETE("/users/:id", adminH.Delete)

	return r
}
