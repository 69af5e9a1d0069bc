package application

import (
	"context"
	"fmt"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
	"github.com/arsicorp/zenith-lab-robotics/internal/ports"
)

// OrderService reads order history. Order placement lives in
// CheckoutService.
type OrderService struct {
	orders    ports.OrderStore
	lineItems ports.LineItemStore
}

func NewOrderService(orders ports.OrderStore, lineItems ports.LineItemStore) *OrderService {
	return &OrderService{orders: orders, lineItems: lineItems}
}

// ListForUser returns the user's order headers, without line items.
func (s *OrderService) ListForUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := s.orders.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Get returns one order with its line items. Users may only read their
// own orders; an ADMIN role may read any.
func (s *OrderService) Get(ctx context.Context, orderID, userID int64, role string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if order.UserID != userID && role != "ADMIN" {
		return nil, ErrForbidden
	}

	lines, err := s.lineItems.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load line items: %w", err)
	}
	order.LineItems = lines
	return order, nil
}

// ListAll returns every order header. Admin only; enforced at the
// transport layer.
func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
