package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
)

type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const productColumns = `product_id, name, price, category_id, description, color, stock, featured, image_url, buyer_requirement`

func scanProduct(row interface{ Scan(...interface{}) error }) (*domain.Product, error) {
	p := &domain.Product{}
	var requirement string
	err := row.Scan(&p.ProductID, &p.Name, &p.Price, &p.CategoryID, &p.Description,
		&p.Color, &p.Stock, &p.Featured, &p.ImageURL, &requirement)
	if err != nil {
		return nil, err
	}
	p.BuyerRequirement = domain.AccountType(requirement)
	return p, nil
}

func (r *CatalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY product_id`)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	return products, nil
}

func (r *CatalogRepository) GetByID(ctx context.Context, productID int64) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE product_id = $1`, productID)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}
	return p, nil
}
