package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bridgemart-backend/internal/core/auth"
	"bridgemart-backend/internal/domain"
	"bridgemart-backend/internal/transport/http/handler"
	mdw "bridgemart-backend/internal/transport/http/middleware"
)

type APIHandlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Order   *handler.OrderHandler
	Report  *handler.ReportHandler
}

// NewAPIEngine 用户端路由：/api/v1 下按角色分组门禁
func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, h APIHandlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 公共
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	// 登录后
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))
	authed.GET("/me", h.Auth.Me)

	// 商品：超市按区浏览，供应商管理自有
	authed.GET("/products", mdw.RequireRole(domain.RoleSupermarket), h.Product.List)
	authed.GET("/products/supplier", mdw.RequireRole(domain.RoleSupplier), h.Product.ListOwn)
	authed.GET("/products/:id", h.Product.Get)
	authed.POST("/products", mdw.RequireRole(domain.RoleSupplier), h.Product.Create)
	authed.PUT("/products/:id", mdw.RequireRole(domain.RoleSupplier, domain.RoleAdmin), h.Product.Update)
	authed.DELETE("/products/:id", mdw.RequireRole(domain.RoleSupplier, domain.RoleAdmin), h.Product.Delete)

	// 订单
	authed.POST("/orders", mdw.RequireRole(domain.RoleSupermarket), h.Order.Create)
	authed.GET("/orders/supplier", mdw.RequireRole(domain.RoleSupplier), h.Order.ListSupplier)
	authed.GET("/orders/supermarket", mdw.RequireRole(domain.RoleSupermarket), h.Order.ListSupermarket)
	authed.GET("/orders/:id", h.Order.Get)
	authed.PATCH("/orders/:id/status", mdw.RequireRole(domain.RoleSupplier), h.Order.UpdateStatus)

	// 供应商报表
	reports := authed.Group("/reports/supplier")
	reports.Use(mdw.RequireRole(domain.RoleSupplier))
	reports.GET("/summary", h.Report.Summary)
	reports.GET("/revenue-over-time", h.Report.RevenueOverTime)
	reports.GET("/orders-by-status", h.Report.OrdersByStatus)
	reports.GET("/top-buyers", h.Report.TopBuyers)
	reports.GET("/top-products", h.Report.TopProducts)

	return r
}
