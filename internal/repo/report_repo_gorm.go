package repo

import (
	"gorm.io/gorm"

	"bridgemart-backend/internal/domain"
)

// ReportRepo 报表聚合查询；排序/截断/搜索等后置过滤在 service 层完成
type ReportRepo struct{ db *gorm.DB }

func NewReportRepo(db *gorm.DB) *ReportRepo { return &ReportRepo{db: db} }

// scoped 共用的前置 match：供应商 + 时间闭区间 + 可选状态
func (r *ReportRepo) scoped(f domain.ReportFilter) *gorm.DB {
	q := r.db.Model(&domain.Order{}).Where("orders.supplier_id = ?", f.SupplierID)
	if f.Start != nil {
		q = q.Where("orders.created_at >= ?", *f.Start)
	}
	if f.End != nil {
		q = q.Where("orders.created_at <= ?", *f.End)
	}
	if f.Status != "" {
		q = q.Where("orders.status = ?", f.Status)
	}
	return q
}

func (r *ReportRepo) Totals(f domain.ReportFilter) (int64, float64, error) {
	var row struct {
		TotalOrders  int64
		TotalRevenue float64
	}
	err := r.scoped(f).
		Select("COUNT(*) AS total_orders, COALESCE(SUM(total_amount), 0) AS total_revenue").
		Scan(&row).Error
	return row.TotalOrders, row.TotalRevenue, err
}

func (r *ReportRepo) CountByStatus(f domain.ReportFilter) ([]domain.StatusCount, error) {
	var rows []domain.StatusCount
	err := r.scoped(f).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepo) RevenueRows(f domain.ReportFilter) ([]domain.OrderRevenueRow, error) {
	var rows []domain.OrderRevenueRow
	err := r.scoped(f).
		Select("created_at, total_amount").
		Order("created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepo) GroupByBuyer(f domain.ReportFilter) ([]domain.BuyerGroup, error) {
	var rows []domain.BuyerGroup
	err := r.scoped(f).
		Select(`orders.supermarket_id AS buyer_id,
			COALESCE(users.name, '') AS name,
			COALESCE(users.email, '') AS email,
			COALESCE(users.district, '') AS district,
			COUNT(*) AS orders,
			COALESCE(SUM(orders.total_amount), 0) AS revenue,
			MAX(orders.created_at) AS last_order_at`).
		Joins("LEFT JOIN users ON users.id = orders.supermarket_id").
		Group("orders.supermarket_id, users.name, users.email, users.district").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepo) GroupByProduct(f domain.ReportFilter) ([]domain.ProductGroup, error) {
	var rows []domain.ProductGroup
	err := r.scoped(f).
		Select(`order_items.product_id AS product_id,
			COALESCE(products.name, '') AS name,
			COALESCE(products.category, '') AS category,
			COALESCE(products.stock, 0) AS stock,
			SUM(order_items.quantity) AS quantity_sold,
			SUM(order_items.quantity * order_items.price) AS revenue`).
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("LEFT JOIN products ON products.id = order_items.product_id").
		Group("order_items.product_id, products.name, products.category, products.stock").
		Scan(&rows).Error
	return rows, err
}
