package repo

import (
	"errors"

	"gorm.io/gorm"

	"bridgemart-backend/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(p *domain.Product) error { return r.db.Create(p).Error }

func (r *ProductRepo) FindByID(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *ProductRepo) List(f domain.ProductListFilter) ([]domain.Product, error) {
	q := r.db.Model(&domain.Product{})
	if f.District != "" {
		q = q.Where("district = ?", f.District)
	}
	if f.SupplierID != "" {
		q = q.Where("supplier_id = ?", f.SupplierID)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	var ps []domain.Product
	err := q.Order("created_at DESC").Find(&ps).Error
	return ps, err
}

func (r *ProductRepo) Update(p *domain.Product) error { return r.db.Save(p).Error }

func (r *ProductRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Product{}).Error
}
