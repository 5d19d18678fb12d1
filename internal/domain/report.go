package domain

import "time"

// ReportFilter 五个报表共用的前置过滤：供应商 + 可选时间段/状态
// End 已被上层归一化到当天 23:59:59.999，闭区间
type ReportFilter struct {
	SupplierID string
	Start      *time.Time
	End        *time.Time
	Status     OrderStatus // 空值表示不过滤
}

// StatusCount 按落库状态分组的计数（折叠成报表口径由 service 完成）
type StatusCount struct {
	Status OrderStatus
	Count  int64
}

// OrderRevenueRow 收入时间序列的原始行，分桶在 service 内完成
type OrderRevenueRow struct {
	CreatedAt   time.Time
	TotalAmount float64
}

// BuyerGroup 按超市分组的聚合行（已 join 买家信息）
type BuyerGroup struct {
	BuyerID     string
	Name        string
	Email       string
	District    string
	Orders      int64
	Revenue     float64
	LastOrderAt time.Time
}

// ProductGroup 按商品分组的聚合行（left join 商品，可能已删除）
type ProductGroup struct {
	ProductID    string
	Name         string
	Category     string
	Stock        int
	QuantitySold int64
	Revenue      float64
}

type ReportRepository interface {
	Totals(f ReportFilter) (orders int64, revenue float64, err error)
	CountByStatus(f ReportFilter) ([]StatusCount, error)
	RevenueRows(f ReportFilter) ([]OrderRevenueRow, error)
	GroupByBuyer(f ReportFilter) ([]BuyerGroup, error)
	GroupByProduct(f ReportFilter) ([]ProductGroup, error)
}
