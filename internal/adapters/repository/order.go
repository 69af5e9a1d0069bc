package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `order_id, user_id, date, address, city, state, zip, shipping_amount, order_total`

func (r *OrderRepository) Create(ctx context.Context, order domain.Order) (int64, error) {
	var orderID int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO orders (user_id, date, address, city, state, zip, shipping_amount, order_total)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING order_id`,
		order.UserID, order.Date, order.Address, order.City, order.State, order.Zip,
		order.ShippingAmount, order.OrderTotal,
	).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return orderID, nil
}

func (r *OrderRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	order := &domain.Order{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_id = $1`, orderID,
	).Scan(&order.OrderID, &order.UserID, &order.Date, &order.Address, &order.City,
		&order.State, &order.Zip, &order.ShippingAmount, &order.OrderTotal)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	return order, nil
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

func collectOrders(rows *sql.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.OrderID, &order.UserID, &order.Date, &order.Address,
			&order.City, &order.State, &order.Zip, &order.ShippingAmount, &order.OrderTotal)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	return orders, nil
}

type LineItemRepository struct {
	db *sql.DB
}

func NewLineItemRepository(db *sql.DB) *LineItemRepository {
	return &LineItemRepository{db: db}
}

func (r *LineItemRepository) Create(ctx context.Context, orderID int64, item domain.OrderLineItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO order_line_items (order_id, product_id, sales_price, quantity, discount)
		 VALUES ($1, $2, $3, $4, $5)`,
		orderID, item.ProductID, item.SalesPrice, item.Quantity, item.Discount)
	if err != nil {
		return fmt.Errorf("insert line item: %w", err)
	}
	return nil
}

func (r *LineItemRepository) ListByOrderID(ctx context.Context, orderID int64) ([]domain.OrderLineItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT order_line_item_id, order_id, product_id, sales_price, quantity, discount
		 FROM order_line_items WHERE order_id = $1 ORDER BY order_line_item_id`,
		orderID)
	if err != nil {
		return nil, fmt.Errorf("select line items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderLineItem
	for rows.Next() {
		var item domain.OrderLineItem
		err := rows.Scan(&item.OrderLineItemID, &item.OrderID, &item.ProductID,
			&item.SalesPrice, &item.Quantity, &item.Discount)
		if err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select line items: %w", err)
	}
	return items, nil
}
