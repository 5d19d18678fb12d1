package repo

import (
	"errors"

	"gorm.io/gorm"

	"bridgemart-backend/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

// Create 订单与明细同事务写入
func (r *OrderRepo) Create(o *domain.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
}

func (r *OrderRepo) FindByID(id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.Preload("Items").First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &o, err
}

func (r *OrderRepo) ListBySupplier(supplierID string, status domain.OrderStatus) ([]domain.Order, error) {
	return r.list("supplier_id", supplierID, status)
}

func (r *OrderRepo) ListBySupermarket(supermarketID string, status domain.OrderStatus) ([]domain.Order, error) {
	return r.list("supermarket_id", supermarketID, status)
}

func (r *OrderRepo) list(col, id string, status domain.OrderStatus) ([]domain.Order, error) {
	q := r.db.Preload("Items").Where(col+" = ?", id)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var os []domain.Order
	err := q.Order("created_at DESC").Find(&os).Error
	return os, err
}

// UpdateStatus 条件更新：带上期望的当前状态，零行命中说明被并发抢先
func (r *OrderRepo) UpdateStatus(id string, from, to domain.OrderStatus) (bool, error) {
	res := r.db.Model(&domain.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
