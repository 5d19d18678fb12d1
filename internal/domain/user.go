package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin       = "admin"
	RoleSupplier    = "supplier"
	RoleSupermarket = "supermarket"
)

// Actor 已认证身份，由 JWT 中间件解析后显式传入每个 service 调用
type Actor struct {
	ID       string
	Role     string
	District string
}

type User struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Name         string         `gorm:"size:64;not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string         `gorm:"size:100;not null" json:"-"`
	Role         string         `gorm:"size:16;not null" json:"role"` // admin/supplier/supermarket，创建后不可变
	District     string         `gorm:"size:64;index" json:"district"`
	IsApproved   bool           `gorm:"not null;default:false" json:"isApproved"`
	IsActive     bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// UserListFilter 管理端用户列表筛选
type UserListFilter struct {
	Role       string
	IsApproved *bool
	Search     string // email/name 模糊
	Offset     int
	Limit      int
}

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	List(f UserListFilter) ([]User, int64, error)
	CountPendingApproval() (int64, error)
	Update(u *User) error
	Delete(id string) error
}
