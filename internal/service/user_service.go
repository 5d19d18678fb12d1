package service

import (
	"errors"
	"fmt"
	"strings"

	"bridgemart-backend/internal/domain"
	"bridgemart-backend/pkg/utils"
)

// ErrInvalidCredentials 登录失败（401），不区分“账号不存在/密码错误”
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService 注册/登录 + 管理端审批流
type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
	District string `json:"district" binding:"required"`
}

// Register 供应商/超市自助注册，待管理员审批
func (s *UserService) Register(in RegisterInput) (*domain.User, error) {
	if in.Role != domain.RoleSupplier && in.Role != domain.RoleSupermarket {
		return nil, domain.Invalid("role must be supplier or supermarket")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Invalid("email already registered")
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: utils.HashPassword(in.Password),
		Role:         in.Role,
		District:     strings.TrimSpace(in.District),
		IsApproved:   false,
		IsActive:     true,
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login 未审批/已停用的账号拒绝登录
func (s *UserService) Login(email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsApproved {
		return nil, fmt.Errorf("%w: account pending approval", domain.ErrForbidden)
	}
	if !u.IsActive {
		return nil, fmt.Errorf("%w: account deactivated", domain.ErrForbidden)
	}
	return u, nil
}

func (s *UserService) Get(id string) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *UserService) List(f domain.UserListFilter) ([]domain.User, int64, error) {
	return s.users.List(f)
}

func (s *UserService) PendingCount() (int64, error) {
	return s.users.CountPendingApproval()
}

// mutableTarget 管理动作的统一前置：目标存在且不是 admin 账号
func (s *UserService) mutableTarget(id string) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if u.Role == domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return u, nil
}

func (s *UserService) Approve(id string) (*domain.User, error) {
	u, err := s.mutableTarget(id)
	if err != nil {
		return nil, err
	}
	u.IsApproved = true
	return u, s.users.Update(u)
}

// Reject 未通过审批的账号直接删除
func (s *UserService) Reject(id string) error {
	u, err := s.mutableTarget(id)
	if err != nil {
		return err
	}
	if u.IsApproved {
		return domain.Invalid("cannot reject an approved account")
	}
	return s.users.Delete(u.ID)
}

func (s *UserService) Activate(id string) (*domain.User, error) {
	u, err := s.mutableTarget(id)
	if err != nil {
		return nil, err
	}
	u.IsActive = true
	return u, s.users.Update(u)
}

func (s *UserService) Deactivate(id string) (*domain.User, error) {
	u, err := s.mutableTarget(id)
	if err != nil {
		return nil, err
	}
	u.IsActive = false
	return u, s.users.Update(u)
}

func (s *UserService) Delete(id string) error {
	u, err := s.mutableTarget(id)
	if err != nil {
		return err
	}
	return s.users.Delete(u.ID)
}
