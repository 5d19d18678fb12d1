package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"bridgemart-backend/internal/core/auth"
	"bridgemart-backend/internal/service"
	"bridgemart-backend/internal/transport/http/middleware"
	"bridgemart-backend/internal/transport/http/response"
)

type AuthHandler struct {
	users *service.UserService
	jwter *auth.JWTer
}

func NewAuthHandler(users *service.UserService, jwter *auth.JWTer) *AuthHandler {
	return &AuthHandler{users: users, jwter: jwter}
}

// Register POST /auth/register 注册后等待审批，不直接发 token
func (h *AuthHandler) Register(c *gin.Context) {
	var in service.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, response.BadRequest(err.Error()))
		return
	}
	u, err := h.users.Register(in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, u)
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, response.BadRequest(err.Error()))
		return
	}
	u, err := h.users.Login(in.Email, in.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, response.Unauthorized("invalid credentials"))
			return
		}
		response.Fail(c, err)
		return
	}
	token, err := h.jwter.Issue(u.ID, u.Role, u.District)
	if err != nil {
		response.Fail(c, response.Internal("issue token failed", err))
		return
	}
	response.OK(c, gin.H{"token": token, "user": u})
}

// Me GET /me
func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	u, err := h.users.Get(actor.ID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, u)
}
