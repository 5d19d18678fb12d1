package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bridgemart-backend/internal/service"
	"bridgemart-backend/internal/transport/http/middleware"
	"bridgemart-backend/internal/transport/http/response"
)

// ReportHandler 供应商侧报表，统一 query：startDate,endDate,status
type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func reportQuery(c *gin.Context) (service.ReportQuery, bool) {
	q, err := service.ParseReportQuery(c.Query("startDate"), c.Query("endDate"), c.Query("status"))
	if err != nil {
		response.Fail(c, err)
		return q, false
	}
	return q, true
}

// Summary GET /reports/supplier/summary
func (h *ReportHandler) Summary(c *gin.Context) {
	q, ok := reportQuery(c)
	if !ok {
		return
	}
	actor := middleware.ActorFrom(c)
	out, err := h.reports.Summary(c.Request.Context(), actor.ID, q)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, out)
}

// RevenueOverTime GET /reports/supplier/revenue-over-time?granularity=day|month
func (h *ReportHandler) RevenueOverTime(c *gin.Context) {
	q, ok := reportQuery(c)
	if !ok {
		return
	}
	actor := middleware.ActorFrom(c)
	out, err := h.reports.RevenueOverTime(c.Request.Context(), actor.ID, q, c.Query("granularity"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, out)
}

// OrdersByStatus GET /reports/supplier/orders-by-status
func (h *ReportHandler) OrdersByStatus(c *gin.Context) {
	q, ok := reportQuery(c)
	if !ok {
		return
	}
	actor := middleware.ActorFrom(c)
	out, err := h.reports.OrdersByStatus(c.Request.Context(), actor.ID, q)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, out)
}

// TopBuyers GET /reports/supplier/top-buyers?limit=&district=&search=
func (h *ReportHandler) TopBuyers(c *gin.Context) {
	q, ok := reportQuery(c)
	if !ok {
		return
	}
	actor := middleware.ActorFrom(c)
	out, err := h.reports.TopBuyers(c.Request.Context(), actor.ID, q,
		atoiDefault(c.Query("limit"), 0), c.Query("district"), c.Query("search"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, out)
}

// TopProducts GET /reports/supplier/top-products?limit=&search=
func (h *ReportHandler) TopProducts(c *gin.Context) {
	q, ok := reportQuery(c)
	if !ok {
		return
	}
	actor := middleware.ActorFrom(c)
	out, err := h.reports.TopProducts(c.Request.Context(), actor.ID, q,
		atoiDefault(c.Query("limit"), 0), c.Query("search"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, out)
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return def
}
