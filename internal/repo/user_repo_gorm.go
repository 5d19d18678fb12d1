package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"bridgemart-backend/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) List(f domain.UserListFilter) ([]domain.User, int64, error) {
	q := r.db.Model(&domain.User{})
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if f.IsApproved != nil {
		q = q.Where("is_approved = ?", *f.IsApproved)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where("email LIKE ? OR name LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var users []domain.User
	if err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepo) CountPendingApproval() (int64, error) {
	var n int64
	err := r.db.Model(&domain.User{}).
		Where("is_approved = ? AND role <> ?", false, domain.RoleAdmin).
		Count(&n).Error
	return n, err
}

func (r *UserRepo) Update(u *domain.User) error { return r.db.Save(u).Error }

func (r *UserRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.User{}).Error
}
