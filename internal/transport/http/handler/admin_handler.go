package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bridgemart-backend/internal/domain"
	"bridgemart-backend/internal/service"
	"bridgemart-backend/internal/transport/http/response"
)

// AdminHandler 管理端审批流：列表、批准、驳回、启停、删除
type AdminHandler struct {
	users *service.UserService
}

func NewAdminHandler(users *service.UserService) *AdminHandler {
	return &AdminHandler{users: users}
}

// ListUsers GET /users?role=&approved=&q=&offset=&limit=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	f := domain.UserListFilter{
		Role:   c.Query("role"),
		Search: c.Query("q"),
		Offset: atoiDefault(c.Query("offset"), 0),
		Limit:  atoiDefault(c.Query("limit"), 20),
	}
	if v := c.Query("approved"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			response.Fail(c, response.BadRequest("approved must be true or false"))
			return
		}
		f.IsApproved = &b
	}
	users, total, err := h.users.List(f)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"total": total, "items": users})
}

// PendingCount GET /users/pending/count 仪表盘角标
func (h *AdminHandler) PendingCount(c *gin.Context) {
	n, err := h.users.PendingCount()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"count": n})
}

// Approve POST /users/:id/approve
func (h *AdminHandler) Approve(c *gin.Context) {
	u, err := h.users.Approve(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, u)
}

// Reject POST /users/:id/reject 未审批账号直接删除
func (h *AdminHandler) Reject(c *gin.Context) {
	if err := h.users.Reject(c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"id": c.Param("id")})
}

// Activate POST /users/:id/activate
func (h *AdminHandler) Activate(c *gin.Context) {
	u, err := h.users.Activate(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, u)
}

// Deactivate POST /users/:id/deactivate admin 账号拒绝
func (h *AdminHandler) Deactivate(c *gin.Context) {
	u, err := h.users.Deactivate(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, u)
}

// Delete DELETE /users/:id admin 账号拒绝
func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"id": c.Param("id")})
}
