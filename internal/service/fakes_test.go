package service

import (
	"sort"
	"strings"

	"bridgemart-backend/internal/domain"
)

type fakeOrderRepo struct {
	orders map[string]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*domain.Order{}}
}

func (r *fakeOrderRepo) Create(o *domain.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) FindByID(id string) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) ListBySupplier(supplierID string, status domain.OrderStatus) ([]domain.Order, error) {
	return r.list(func(o *domain.Order) bool { return o.SupplierID == supplierID }, status)
}

func (r *fakeOrderRepo) ListBySupermarket(supermarketID string, status domain.OrderStatus) ([]domain.Order, error) {
	return r.list(func(o *domain.Order) bool { return o.SupermarketID == supermarketID }, status)
}

func (r *fakeOrderRepo) list(match func(*domain.Order) bool, status domain.OrderStatus) ([]domain.Order, error) {
	out := []domain.Order{}
	for _, o := range r.orders {
		if match(o) && (status == "" || o.Status == status) {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(id string, from, to domain.OrderStatus) (bool, error) {
	o, ok := r.orders[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}

type fakeProductRepo struct {
	products   map[string]*domain.Product
	lastFilter domain.ProductListFilter
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*domain.Product{}}
}

func (r *fakeProductRepo) Create(p *domain.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) FindByID(id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(f domain.ProductListFilter) ([]domain.Product, error) {
	r.lastFilter = f
	out := []domain.Product{}
	for _, p := range r.products {
		if f.District != "" && p.District != f.District {
			continue
		}
		if f.SupplierID != "" && p.SupplierID != f.SupplierID {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.ActiveOnly && !p.IsActive {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *domain.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(u *domain.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(f domain.UserListFilter) ([]domain.User, int64, error) {
	out := []domain.User{}
	for _, u := range r.users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.IsApproved != nil && u.IsApproved != *f.IsApproved {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) CountPendingApproval() (int64, error) {
	var n int64
	for _, u := range r.users {
		if !u.IsApproved && u.Role != domain.RoleAdmin {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) Update(u *domain.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

// fakeReportRepo 返回预置行并记录最后一次的过滤条件
type fakeReportRepo struct {
	totalsOrders  int64
	totalsRevenue float64
	statusCounts  []domain.StatusCount
	revenueRows   []domain.OrderRevenueRow
	buyerGroups   []domain.BuyerGroup
	productGroups []domain.ProductGroup
	lastFilter    domain.ReportFilter
}

func (r *fakeReportRepo) Totals(f domain.ReportFilter) (int64, float64, error) {
	r.lastFilter = f
	return r.totalsOrders, r.totalsRevenue, nil
}

func (r *fakeReportRepo) CountByStatus(f domain.ReportFilter) ([]domain.StatusCount, error) {
	r.lastFilter = f
	return r.statusCounts, nil
}

func (r *fakeReportRepo) RevenueRows(f domain.ReportFilter) ([]domain.OrderRevenueRow, error) {
	r.lastFilter = f
	return r.revenueRows, nil
}

func (r *fakeReportRepo) GroupByBuyer(f domain.ReportFilter) ([]domain.BuyerGroup, error) {
	r.lastFilter = f
	return r.buyerGroups, nil
}

func (r *fakeReportRepo) GroupByProduct(f domain.ReportFilter) ([]domain.ProductGroup, error) {
	r.lastFilter = f
	return r.productGroups, nil
}
