package domain

import "time"

type Product struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	Description string    `gorm:"size:1024" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Category    string    `gorm:"size:64;index" json:"category"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	SupplierID  string    `gorm:"size:36;index;not null" json:"supplierId"`
	District    string    `gorm:"size:64;index" json:"district"` // 创建时从供应商冗余，保证同区可见性
	Image       string    `gorm:"size:255" json:"image,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

// ProductListFilter 目录查询：超市侧强制 district + is_active
type ProductListFilter struct {
	District   string
	SupplierID string
	Category   string
	ActiveOnly bool
}

type ProductRepository interface {
	Create(p *Product) error
	FindByID(id string) (*Product, error)
	List(f ProductListFilter) ([]Product, error)
	Update(p *Product) error
	Delete(id string) error
}
