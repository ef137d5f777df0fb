package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/quickbite/internal/models"
	"github.com/example/quickbite/internal/store"
	"github.com/example/quickbite/internal/utils"
)

// OrderNotifier is told about every placed order.
type OrderNotifier interface {
	NotifyNewOrder(order OrderNotification) error
}

// OrderService places orders and drives their status.
type OrderService struct {
	orders   store.OrderStore
	notifier OrderNotifier
	logger   *zap.Logger
}

// NewOrderService constructs OrderService. notifier may be nil.
func NewOrderService(orders store.OrderStore, notifier OrderNotifier, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, notifier: notifier, logger: logger}
}

// OrderLineInput is one requested item.
type OrderLineInput struct {
	ItemID   uint
	ItemName string
	Cost     float64
	Quantity int
}

// PlaceOrderInput is a validated order request.
type PlaceOrderInput struct {
	Total     float64
	Lines     []OrderLineInput
	PaymentID string
}

// PlaceOrder stores a pending order owned by the caller. The returned order
// does not carry its lines.
func (s *OrderService) PlaceOrder(ctx context.Context, p *Principal, in PlaceOrderInput) (*models.Order, error) {
	if len(in.Lines) == 0 {
		return nil, newError(KindValidation, "order must contain at least one item")
	}

	order := &models.Order{
		UserID:    p.ID,
		Total:     in.Total,
		Status:    models.OrderPending,
		PaymentID: in.PaymentID,
	}

	lines := make([]models.OrderLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, models.OrderLine{
			ItemID:   l.ItemID,
			ItemName: l.ItemName,
			Cost:     l.Cost,
			Quantity: l.Quantity,
		})
	}

	if err := s.orders.CreateOrder(ctx, order, lines); err != nil {
		return nil, internal(fmt.Errorf("create order: %w", err))
	}

	if s.notifier != nil {
		go s.notify(*order, lines, p.PhoneNumber)
	}

	return order, nil
}

// GetOrder returns one order with its lines and owner. A non-zero ownerID
// restricts the lookup to that user's orders.
func (s *OrderService) GetOrder(ctx context.Context, id, ownerID uint) (models.OrderDetails, error) {
	order, err := s.orders.FindOrder(ctx, store.OrderFilter{ID: id, UserID: ownerID})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.OrderDetails{}, newError(KindNotFound, MsgOrderNotFound)
		}
		return models.OrderDetails{}, internal(err)
	}
	return order.Details(ownerID == 0), nil
}

// ListOrders returns orders newest first, scoped to ownerID when non-zero.
// An empty result is reported as not found.
func (s *OrderService) ListOrders(ctx context.Context, ownerID uint) ([]models.OrderDetails, error) {
	return s.ListOrdersPage(ctx, ownerID, utils.Pagination{})
}

// ListOrdersPage is ListOrders restricted to one page.
func (s *OrderService) ListOrdersPage(ctx context.Context, ownerID uint, page utils.Pagination) ([]models.OrderDetails, error) {
	orders, err := s.orders.ListOrders(ctx, store.OrderFilter{
		UserID: ownerID,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, internal(err)
	}
	if len(orders) == 0 {
		return nil, newError(KindNotFound, MsgOrdersListNotFound)
	}

	out := make([]models.OrderDetails, 0, len(orders))
	for i := range orders {
		out = append(out, orders[i].Details(ownerID == 0))
	}
	return out, nil
}

// UpdateOrderStatus moves an order to status. Repeating the current status
// is a conflict. Any other valid status is accepted; moving backwards is
// allowed but logged.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() || status == models.OrderPending {
		return nil, newError(KindValidation, MsgInvalidStatus)
	}

	current, err := s.orders.FindOrder(ctx, store.OrderFilter{ID: id})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newError(KindNotFound, MsgOrderNotFound)
		}
		return nil, internal(err)
	}

	if current.Status == status {
		return nil, newError(KindConflict, MsgStatusUnchanged)
	}

	if status.Before(current.Status) {
		s.logger.Warn("order status moved backwards",
			zap.Uint("order_id", id),
			zap.String("from", string(current.Status)),
			zap.String("to", string(status)),
		)
	}

	updated, err := s.orders.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newError(KindNotFound, MsgOrderNotFound)
		}
		return nil, internal(err)
	}
	updated.Lines = nil
	updated.User = nil
	return updated, nil
}

func (s *OrderService) notify(order models.Order, lines []models.OrderLine, phone string) {
	items := make([]OrderItemNotification, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItemNotification{
			Name:     l.ItemName,
			Quantity: l.Quantity,
			Price:    l.Cost,
		})
	}

	err := s.notifier.NotifyNewOrder(OrderNotification{
		OrderID:     order.ID,
		Items:       items,
		TotalAmount: order.Total,
		UserPhone:   phone,
		PaymentID:   order.PaymentID,
		Status:      string(order.Status),
	})
	if err != nil {
		s.logger.Warn("order notification failed", zap.Uint("order_id", order.ID), zap.Error(err))
	}
}
