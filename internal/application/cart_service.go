package application

import (
	"context"
	"fmt"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
	"github.com/arsicorp/zenith-lab-robotics/internal/ports"
)

type CartService struct {
	carts   ports.CartStore
	catalog ports.CatalogStore
}

func NewCartService(carts ports.CartStore, catalog ports.CatalogStore) *CartService {
	return &CartService{carts: carts, catalog: catalog}
}

func (s *CartService) Get(ctx context.Context, userID int64) (domain.Cart, error) {
	cart, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load cart: %w", err)
	}
	return cart, nil
}

// AddItem adds one unit of a product to the cart, or bumps the quantity
// when the product is already there. The updated cart is returned.
func (s *CartService) AddItem(ctx context.Context, userID, productID int64) (domain.Cart, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return domain.Cart{}, ErrNotFound
	}
	if err := s.carts.AddItem(ctx, userID, productID); err != nil {
		return domain.Cart{}, fmt.Errorf("add cart item: %w", err)
	}
	return s.Get(ctx, userID)
}

func (s *CartService) UpdateItem(ctx context.Context, userID, productID int64, quantity int32) (domain.Cart, error) {
	if quantity < 1 {
		return domain.Cart{}, ErrInvalidInput
	}
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return domain.Cart{}, ErrNotFound
	}
	if err := s.carts.UpdateItem(ctx, userID, productID, quantity); err != nil {
		return domain.Cart{}, fmt.Errorf("update cart item: %w", err)
	}
	return s.Get(ctx, userID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID int64) (domain.Cart, error) {
	if err := s.carts.RemoveItem(ctx, userID, productID); err != nil {
		return domain.Cart{}, fmt.Errorf("remove cart item: %w", err)
	}
	return s.Get(ctx, userID)
}

func (s *CartService) Clear(ctx context.Context, userID int64) error {
	if err := s.carts.ClearCart(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
