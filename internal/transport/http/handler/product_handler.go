package handler

import (
	"github.com/gin-gonic/gin"

	"bridgemart-backend/internal/service"
	"bridgemart-backend/internal/transport/http/middleware"
	"bridgemart-backend/internal/transport/http/response"
)

type ProductHandler struct {
	catalog *service.CatalogService
}

func NewProductHandler(catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List GET /products 超市目录：同区 + 上架，?category= 可再收窄
func (h *ProductHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	ps, err := h.catalog.ListForSupermarket(actor, c.Query("category"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, ps)
}

// ListOwn GET /products/supplier 供应商自有商品（含下架）
func (h *ProductHandler) ListOwn(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	ps, err := h.catalog.ListOwn(actor)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, ps)
}

// Get GET /products/:id 跨区直查 403，不存在 404
func (h *ProductHandler) Get(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	p, err := h.catalog.Get(actor, c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, p)
}

// Create POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var in service.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, response.BadRequest(err.Error()))
		return
	}
	actor := middleware.ActorFrom(c)
	p, err := h.catalog.Create(actor, in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, p)
}

// Update PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var in service.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, response.BadRequest(err.Error()))
		return
	}
	actor := middleware.ActorFrom(c)
	p, err := h.catalog.Update(actor, c.Param("id"), in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, p)
}

// Delete DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if err := h.catalog.Delete(actor, c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"id": c.Param("id")})
}
