package handler

import (
	"github.com/gin-gonic/gin"

	"bridgemart-backend/internal/service"
	"bridgemart-backend/internal/transport/http/middleware"
	"bridgemart-backend/internal/transport/http/response"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create POST /orders 超市下单
func (h *OrderHandler) Create(c *gin.Context) {
	var in service.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, response.BadRequest(err.Error()))
		return
	}
	actor := middleware.ActorFrom(c)
	o, err := h.orders.Create(actor, in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, o)
}

// ListSupplier GET /orders/supplier 供应商自己的供货单，?status= 可过滤
func (h *OrderHandler) ListSupplier(c *gin.Context) {
	h.listOwn(c)
}

// ListSupermarket GET /orders/supermarket 超市自己的采购单
func (h *OrderHandler) ListSupermarket(c *gin.Context) {
	h.listOwn(c)
}

func (h *OrderHandler) listOwn(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	os, err := h.orders.ListForActor(actor, c.Query("status"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, os)
}

// Get GET /orders/:id 仅归属方可读
func (h *OrderHandler) Get(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	o, err := h.orders.Get(actor, c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, o)
}

// UpdateStatus PATCH /orders/:id/status 状态机流转，body {"status": "..."}
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, response.BadRequest(err.Error()))
		return
	}
	actor := middleware.ActorFrom(c)
	o, err := h.orders.UpdateStatus(actor, c.Param("id"), in.Status)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, o)
}
