package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
	"github.com/arsicorp/zenith-lab-robotics/internal/ports"
)

const (
	productsListKey   = "products:list"
	productsKeyPrefix = "products:"
)

// CatalogService serves the product catalog, reading through a cache.
// Cache failures are logged and ignored; the database is the source of
// truth.
type CatalogService struct {
	catalog ports.CatalogStore
	cache   ports.Cache
}

func NewCatalogService(catalog ports.CatalogStore, cache ports.Cache) *CatalogService {
	return &CatalogService{catalog: catalog, cache: cache}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, productsListKey); err == nil && data != nil {
			var products []domain.Product
			if err := json.Unmarshal(data, &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, productsListKey, products); err != nil {
			slog.Warn("cache set failed", "key", productsListKey, "error", err)
		}
	}
	return products, nil
}

func (s *CatalogService) Get(ctx context.Context, productID int64) (*domain.Product, error) {
	key := fmt.Sprintf("%s%d", productsKeyPrefix, productID)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil && data != nil {
			var product domain.Product
			if err := json.Unmarshal(data, &product); err == nil {
				return &product, nil
			}
		}
	}

	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, ErrNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, product); err != nil {
			slog.Warn("cache set failed", "key", key, "error", err)
		}
	}
	return product, nil
}

// Invalidate drops all cached catalog entries. Called after admin edits.
func (s *CatalogService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPrefix(ctx, productsKeyPrefix); err != nil {
		slog.Warn("cache invalidation failed", "prefix", productsKeyPrefix, "error", err)
	}
}
