package service

import (
	"strings"

	"bridgemart-backend/internal/domain"
	"bridgemart-backend/pkg/utils"
)

// CatalogService 商品目录：超市侧按区可见，供应商侧管理自有商品
type CatalogService struct {
	products domain.ProductRepository
}

func NewCatalogService(products domain.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// ListForSupermarket 同区 + 上架商品，可选品类过滤
func (s *CatalogService) ListForSupermarket(actor domain.Actor, category string) ([]domain.Product, error) {
	if actor.Role != domain.RoleSupermarket {
		return nil, domain.ErrForbidden
	}
	return s.products.List(domain.ProductListFilter{
		District:   actor.District,
		Category:   category,
		ActiveOnly: true,
	})
}

// Get 跨区直查返回 403 而非 404：商品存在但不可见
func (s *CatalogService) Get(actor domain.Actor, id string) (*domain.Product, error) {
	p, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleSupermarket:
		if p.District != actor.District {
			return nil, domain.ErrForbidden
		}
	case domain.RoleSupplier:
		if p.SupplierID != actor.ID {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrForbidden
	}
	return p, nil
}

type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
	IsActive    *bool   `json:"isActive"`
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Invalid("product name is required")
	}
	if in.Price < 0 {
		return domain.Invalid("price must not be negative")
	}
	if in.Stock < 0 {
		return domain.Invalid("stock must not be negative")
	}
	return nil
}

// Create 仅供应商；district 从供应商身份冗余到商品
func (s *CatalogService) Create(actor domain.Actor, in ProductInput) (*domain.Product, error) {
	if actor.Role != domain.RoleSupplier {
		return nil, domain.ErrForbidden
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	p := &domain.Product{
		ID:          utils.NewID(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Stock:       in.Stock,
		SupplierID:  actor.ID,
		District:    actor.District,
		Image:       in.Image,
		IsActive:    true,
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if err := s.products.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update 归属供应商或 admin；district 不可改
func (s *CatalogService) Update(actor domain.Actor, id string, in ProductInput) (*domain.Product, error) {
	p, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if actor.Role != domain.RoleAdmin && !(actor.Role == domain.RoleSupplier && p.SupplierID == actor.ID) {
		return nil, domain.ErrForbidden
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Category = in.Category
	p.Stock = in.Stock
	p.Image = in.Image
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if err := s.products.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) Delete(actor domain.Actor, id string) error {
	p, err := s.products.FindByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if actor.Role != domain.RoleAdmin && !(actor.Role == domain.RoleSupplier && p.SupplierID == actor.ID) {
		return domain.ErrForbidden
	}
	return s.products.Delete(id)
}

// ListOwn 供应商自有商品（含下架）
func (s *CatalogService) ListOwn(actor domain.Actor) ([]domain.Product, error) {
	if actor.Role != domain.RoleSupplier {
		return nil, domain.ErrForbidden
	}
	return s.products.List(domain.ProductListFilter{SupplierID: actor.ID})
}
