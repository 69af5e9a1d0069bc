package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
)

// CartRepository stores carts in the shopping_cart table, one row per
// (user, product). Reads join the products table so cart items carry the
// current catalog row.
type CartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) GetByUserID(ctx context.Context, userID int64) (domain.Cart, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.quantity, c.discount_percent, `+prefixedProductColumns("p")+`
		 FROM shopping_cart c
		 JOIN products p ON p.product_id = c.product_id
		 WHERE c.user_id = $1`,
		userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("select cart: %w", err)
	}
	defer rows.Close()

	cart := domain.NewCart()
	for rows.Next() {
		var item domain.CartItem
		var requirement string
		err := rows.Scan(&item.Quantity, &item.DiscountPercent,
			&item.Product.ProductID, &item.Product.Name, &item.Product.Price,
			&item.Product.CategoryID, &item.Product.Description, &item.Product.Color,
			&item.Product.Stock, &item.Product.Featured, &item.Product.ImageURL, &requirement)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("scan cart item: %w", err)
		}
		item.Product.BuyerRequirement = domain.AccountType(requirement)
		cart.Add(item)
	}
	if err := rows.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("select cart: %w", err)
	}
	return cart, nil
}

func (r *CartRepository) AddItem(ctx context.Context, userID, productID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO shopping_cart (user_id, product_id, quantity)
		 VALUES ($1, $2, 1)
		 ON CONFLICT (user_id, product_id)
		 DO UPDATE SET quantity = shopping_cart.quantity + 1`,
		userID, productID)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

func (r *CartRepository) UpdateItem(ctx context.Context, userID, productID int64, quantity int32) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE shopping_cart SET quantity = $3 WHERE user_id = $1 AND product_id = $2`,
		userID, productID, quantity)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update cart item: product %d not in cart", productID)
	}
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, productID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM shopping_cart WHERE user_id = $1 AND product_id = $2`,
		userID, productID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

func (r *CartRepository) ClearCart(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM shopping_cart WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func prefixedProductColumns(alias string) string {
	return alias + `.product_id, ` + alias + `.name, ` + alias + `.price, ` +
		alias + `.category_id, ` + alias + `.description, ` + alias + `.color, ` +
		alias + `.stock, ` + alias + `.featured, ` + alias + `.image_url, ` + alias + `.buyer_requirement`
}
