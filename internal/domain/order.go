package domain

import "time"

// OrderStatus 订单生命周期状态（落库唯一词表）
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusApproved   OrderStatus = "approved"
	StatusRejected   OrderStatus = "rejected" // 终态
	StatusDispatched OrderStatus = "dispatched"
	StatusDelivered  OrderStatus = "delivered" // 终态
)

// transitions 状态机合法流转表；不在表内即拒绝
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusApproved, StatusRejected},
	StatusApproved:   {StatusDispatched},
	StatusRejected:   {},
	StatusDispatched: {StatusDelivered},
	StatusDelivered:  {},
}

// ParseStatus 校验外部传入的状态值
func ParseStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(s)
	_, ok := transitions[st]
	return st, ok
}

// CanTransition from → to 是否合法
func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderItem 下单时的商品快照，价格/名称落库后不再跟随商品变动
type OrderItem struct {
	ID        string  `gorm:"primaryKey;size:36" json:"-"`
	OrderID   string  `gorm:"size:36;index;not null" json:"-"`
	ProductID string  `gorm:"size:36;index;not null" json:"productId"`
	Name      string  `gorm:"size:128;not null" json:"name"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

func (OrderItem) TableName() string { return "order_items" }

type Order struct {
	ID              string      `gorm:"primaryKey;size:36" json:"id"`
	SupermarketID   string      `gorm:"size:36;index;not null" json:"supermarketId"`
	SupplierID      string      `gorm:"size:36;index;not null" json:"supplierId"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	TotalAmount     float64     `gorm:"not null" json:"totalAmount"`
	DeliveryAddress string      `gorm:"size:255;not null" json:"deliveryAddress"`
	Note            string      `gorm:"size:512" json:"note,omitempty"`
	Status          OrderStatus `gorm:"size:16;index;not null" json:"status"`
	District        string      `gorm:"size:64;index" json:"district"` // 下单时从超市冗余
	PaymentMethod   string      `gorm:"size:32" json:"paymentMethod,omitempty"`
	PaymentStatus   string      `gorm:"size:32" json:"paymentStatus,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func (Order) TableName() string { return "orders" }

type OrderRepository interface {
	Create(o *Order) error
	FindByID(id string) (*Order, error)
	ListBySupplier(supplierID string, status OrderStatus) ([]Order, error)
	ListBySupermarket(supermarketID string, status OrderStatus) ([]Order, error)
	// UpdateStatus 条件更新（WHERE status = from），返回是否命中；并发抢先者胜出
	UpdateStatus(id string, from, to OrderStatus) (bool, error)
}
