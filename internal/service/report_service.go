package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"bridgemart-backend/internal/core/cache"
	"bridgemart-backend/internal/domain"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 50
)

// 报表口径的四个固定桶，顺序即 orders-by-status 的返回顺序
const (
	BucketPending   = "Pending"
	BucketConfirmed = "Confirmed"
	BucketDelivered = "Delivered"
	BucketCancelled = "Cancelled"
)

// reportBucket 落库状态折叠到报表口径
func reportBucket(s domain.OrderStatus) string {
	switch s {
	case domain.StatusPending:
		return BucketPending
	case domain.StatusApproved, domain.StatusDispatched:
		return BucketConfirmed
	case domain.StatusDelivered:
		return BucketDelivered
	case domain.StatusRejected:
		return BucketCancelled
	}
	return ""
}

// ReportService 供应商侧五个只读 rollup；可选 redis 缓存
type ReportService struct {
	reports domain.ReportRepository
	cache   *cache.Cache
	ttl     time.Duration
}

func NewReportService(reports domain.ReportRepository) *ReportService {
	return &ReportService{reports: reports}
}

// WithCache 开启 rollup 缓存（TTL 较短，仪表盘刷新可接受）
func (s *ReportService) WithCache(c *cache.Cache, ttl time.Duration) *ReportService {
	s.cache = c
	s.ttl = ttl
	return s
}

// ReportQuery 五个 rollup 共用的前置过滤
type ReportQuery struct {
	Start  *time.Time
	End    *time.Time
	Status domain.OrderStatus
}

// ParseReportQuery 解析 YYYY-MM-DD 日期对与可选状态；endDate 归一化到当天 23:59:59.999
func ParseReportQuery(startDate, endDate, status string) (ReportQuery, error) {
	var q ReportQuery
	if startDate != "" {
		t, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
		if err != nil {
			return q, domain.Invalid("invalid startDate %q", startDate)
		}
		q.Start = &t
	}
	if endDate != "" {
		t, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
		if err != nil {
			return q, domain.Invalid("invalid endDate %q", endDate)
		}
		eod := endOfDay(t)
		q.End = &eod
	}
	if status != "" {
		st, ok := domain.ParseStatus(status)
		if !ok {
			return q, domain.Invalid("unknown order status %q", status)
		}
		q.Status = st
	}
	return q, nil
}

// endOfDay 按日历取当天最后一毫秒；不能用 +24h，夏令时切换日会漂移
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func (q ReportQuery) filter(supplierID string) domain.ReportFilter {
	return domain.ReportFilter{SupplierID: supplierID, Start: q.Start, End: q.End, Status: q.Status}
}

func (q ReportQuery) cacheKey(kind, supplierID string, extra ...string) string {
	start, end := "", ""
	if q.Start != nil {
		start = q.Start.Format("2006-01-02")
	}
	if q.End != nil {
		end = q.End.Format("2006-01-02")
	}
	key := fmt.Sprintf("report:%s:%s:%s:%s:%s", kind, supplierID, start, end, q.Status)
	if len(extra) > 0 {
		key += ":" + strings.Join(extra, ":")
	}
	return key
}

type Summary struct {
	TotalOrders     int64   `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingOrders   int64   `json:"pendingOrders"`
	ConfirmedOrders int64   `json:"confirmedOrders"`
	DeliveredOrders int64   `json:"deliveredOrders"`
	CancelledOrders int64   `json:"cancelledOrders"`
}

type RevenuePoint struct {
	Label   string  `json:"label"` // YYYY-M 或 YYYY-M-D，不补零
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

type StatusBucket struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TopBuyer struct {
	BuyerID     string    `json:"buyerId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	District    string    `json:"district"`
	Orders      int64     `json:"orders"`
	Revenue     float64   `json:"revenue"`
	LastOrderAt time.Time `json:"lastOrderAt"`
}

type TopProduct struct {
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Stock        int     `json:"stock"`
	QuantitySold int64   `json:"quantitySold"`
	Revenue      float64 `json:"revenue"`
}

// Summary 汇总：订单数、收入、四个口径桶的数量；无数据返回全零
func (s *ReportService) Summary(ctx context.Context, supplierID string, q ReportQuery) (*Summary, error) {
	load := func(context.Context) (*Summary, error) {
		orders, revenue, err := s.reports.Totals(q.filter(supplierID))
		if err != nil {
			return nil, err
		}
		counts, err := s.reports.CountByStatus(q.filter(supplierID))
		if err != nil {
			return nil, err
		}
		out := &Summary{TotalOrders: orders, TotalRevenue: revenue}
		for _, c := range counts {
			switch reportBucket(c.Status) {
			case BucketPending:
				out.PendingOrders += c.Count
			case BucketConfirmed:
				out.ConfirmedOrders += c.Count
			case BucketDelivered:
				out.DeliveredOrders += c.Count
			case BucketCancelled:
				out.CancelledOrders += c.Count
			}
		}
		return out, nil
	}
	if s.cache != nil && s.ttl > 0 {
		return cache.GetOrLoadJSON[Summary](s.cache, ctx, q.cacheKey("summary", supplierID), s.ttl, load)
	}
	return load(ctx)
}

// RevenueOverTime 按自然月（默认）或自然日分桶，升序
func (s *ReportService) RevenueOverTime(ctx context.Context, supplierID string, q ReportQuery, granularity string) ([]RevenuePoint, error) {
	switch granularity {
	case "", "month", "day":
	default:
		return nil, domain.Invalid("granularity must be day or month")
	}
	load := func(context.Context) (*[]RevenuePoint, error) {
		rows, err := s.reports.RevenueRows(q.filter(supplierID))
		if err != nil {
			return nil, err
		}
		points := make([]RevenuePoint, 0)
		for _, row := range rows {
			label := bucketLabel(row.CreatedAt, granularity)
			if n := len(points); n > 0 && points[n-1].Label == label {
				points[n-1].Revenue += row.TotalAmount
				points[n-1].Orders++
				continue
			}
			points = append(points, RevenuePoint{Label: label, Revenue: row.TotalAmount, Orders: 1})
		}
		return &points, nil
	}
	if s.cache != nil && s.ttl > 0 {
		out, err := cache.GetOrLoadJSON[[]RevenuePoint](s.cache, ctx, q.cacheKey("revenue", supplierID, granularity), s.ttl, load)
		if err != nil {
			return nil, err
		}
		return *out, nil
	}
	out, err := load(ctx)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// bucketLabel 行已按 created_at 升序，相同日历桶必然相邻
func bucketLabel(t time.Time, granularity string) string {
	if granularity == "day" {
		return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
	}
	return fmt.Sprintf("%d-%d", t.Year(), int(t.Month()))
}

// OrdersByStatus 固定返回四个口径桶，缺的补零，顺序不变
func (s *ReportService) OrdersByStatus(ctx context.Context, supplierID string, q ReportQuery) ([]StatusBucket, error) {
	load := func(context.Context) (*[]StatusBucket, error) {
		counts, err := s.reports.CountByStatus(q.filter(supplierID))
		if err != nil {
			return nil, err
		}
		byBucket := map[string]int64{}
		for _, c := range counts {
			byBucket[reportBucket(c.Status)] += c.Count
		}
		out := []StatusBucket{
			{Status: BucketPending, Count: byBucket[BucketPending]},
			{Status: BucketConfirmed, Count: byBucket[BucketConfirmed]},
			{Status: BucketDelivered, Count: byBucket[BucketDelivered]},
			{Status: BucketCancelled, Count: byBucket[BucketCancelled]},
		}
		return &out, nil
	}
	if s.cache != nil && s.ttl > 0 {
		out, err := cache.GetOrLoadJSON[[]StatusBucket](s.cache, ctx, q.cacheKey("by-status", supplierID), s.ttl, load)
		if err != nil {
			return nil, err
		}
		return *out, nil
	}
	out, err := load(ctx)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// TopBuyers 按买家聚合后，地区精确匹配 + 名称/邮箱不区分大小写子串过滤，收入倒序截断
func (s *ReportService) TopBuyers(ctx context.Context, supplierID string, q ReportQuery, limit int, district, search string) ([]TopBuyer, error) {
	rows, err := s.reports.GroupByBuyer(q.filter(supplierID))
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]TopBuyer, 0, len(rows))
	for _, r := range rows {
		if district != "" && r.District != district {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Name), needle) &&
			!strings.Contains(strings.ToLower(r.Email), needle) {
			continue
		}
		out = append(out, TopBuyer{
			BuyerID: r.BuyerID, Name: r.Name, Email: r.Email, District: r.District,
			Orders: r.Orders, Revenue: r.Revenue, LastOrderAt: r.LastOrderAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return truncate(out, limit), nil
}

// TopProducts 按商品聚合；商品已删除时名称/分类/库存给兜底值
func (s *ReportService) TopProducts(ctx context.Context, supplierID string, q ReportQuery, limit int, search string) ([]TopProduct, error) {
	rows, err := s.reports.GroupByProduct(q.filter(supplierID))
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]TopProduct, 0, len(rows))
	for _, r := range rows {
		name, category := r.Name, r.Category
		if name == "" {
			name = "Unknown Product"
		}
		if category == "" {
			category = "-"
		}
		if needle != "" && !strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		out = append(out, TopProduct{
			ProductID: r.ProductID, Name: name, Category: category, Stock: r.Stock,
			QuantitySold: r.QuantitySold, Revenue: r.Revenue,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].QuantitySold > out[j].QuantitySold })
	return truncate(out, limit), nil
}

func truncate[T any](xs []T, limit int) []T {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}
	if len(xs) > limit {
		return xs[:limit]
	}
	return xs
}
