package service

import (
	"strings"

	"bridgemart-backend/internal/domain"
	"bridgemart-backend/pkg/utils"
)

// OrderService 订单生命周期：创建、状态机流转、按归属读取
type OrderService struct {
	orders domain.OrderRepository
}

func NewOrderService(orders domain.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

type OrderItemInput struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
}

type CreateOrderInput struct {
	SupplierID      string           `json:"supplierId" binding:"required"`
	Items           []OrderItemInput `json:"items" binding:"required"`
	TotalAmount     float64          `json:"totalAmount"`
	DeliveryAddress string           `json:"deliveryAddress" binding:"required"`
	Note            string           `json:"note"`
	PaymentMethod   string           `json:"paymentMethod"`
}

// Create 超市下单：status=pending，district 取下单人；明细按快照原样落库，不改价不扣库存
func (s *OrderService) Create(actor domain.Actor, in CreateOrderInput) (*domain.Order, error) {
	if actor.Role != domain.RoleSupermarket {
		return nil, domain.ErrForbidden
	}
	if len(in.Items) == 0 {
		return nil, domain.Invalid("order must contain at least one item")
	}
	if strings.TrimSpace(in.SupplierID) == "" {
		return nil, domain.Invalid("supplier is required")
	}
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return nil, domain.Invalid("delivery address is required")
	}

	o := &domain.Order{
		ID:              utils.NewID(),
		SupermarketID:   actor.ID,
		SupplierID:      in.SupplierID,
		TotalAmount:     in.TotalAmount,
		DeliveryAddress: in.DeliveryAddress,
		Note:            in.Note,
		Status:          domain.StatusPending,
		District:        actor.District,
		PaymentMethod:   in.PaymentMethod,
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, domain.Invalid("item quantity must be positive")
		}
		o.Items = append(o.Items, domain.OrderItem{
			ID:        utils.NewID(),
			OrderID:   o.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	if err := s.orders.Create(o); err != nil {
		return nil, err
	}
	return o, nil
}

// UpdateStatus 仅订单所属供应商可流转；非法边拒绝且不落库
func (s *OrderService) UpdateStatus(actor domain.Actor, orderID, target string) (*domain.Order, error) {
	to, ok := domain.ParseStatus(target)
	if !ok {
		return nil, domain.Invalid("unknown order status %q", target)
	}

	o, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if actor.Role != domain.RoleSupplier || o.SupplierID != actor.ID {
		return nil, domain.ErrForbidden
	}
	if !domain.CanTransition(o.Status, to) {
		return nil, &domain.InvalidTransitionError{From: o.Status, To: to}
	}

	moved, err := s.orders.UpdateStatus(o.ID, o.Status, to)
	if err != nil {
		return nil, err
	}
	if !moved {
		// 并发写抢先改掉了状态，按最新状态重新报非法流转
		cur, err := s.orders.FindByID(orderID)
		if err != nil {
			return nil, err
		}
		if cur == nil {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.InvalidTransitionError{From: cur.Status, To: to}
	}

	o.Status = to
	return o, nil
}

// Get 归属读：供应商只能看自己的供货单，超市只能看自己的采购单
func (s *OrderService) Get(actor domain.Actor, orderID string) (*domain.Order, error) {
	o, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	switch actor.Role {
	case domain.RoleSupplier:
		if o.SupplierID != actor.ID {
			return nil, domain.ErrForbidden
		}
	case domain.RoleSupermarket:
		if o.SupermarketID != actor.ID {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrForbidden
	}
	return o, nil
}

// ListForActor 自己的订单列表，可选状态过滤，时间倒序
func (s *OrderService) ListForActor(actor domain.Actor, status string) ([]domain.Order, error) {
	var st domain.OrderStatus
	if status != "" {
		parsed, ok := domain.ParseStatus(status)
		if !ok {
			return nil, domain.Invalid("unknown order status %q", status)
		}
		st = parsed
	}
	switch actor.Role {
	case domain.RoleSupplier:
		return s.orders.ListBySupplier(actor.ID, st)
	case domain.RoleSupermarket:
		return s.orders.ListBySupermarket(actor.ID, st)
	default:
		return nil, domain.ErrForbidden
	}
}
