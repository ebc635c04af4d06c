// internal/application/catalog_service.go
package application

import (
	"context"
	"encoding/json"
	"log"

	"github.com/macgtech/storefront/internal/domain"
	"github.com/macgtech/storefront/internal/ports"
)

// CatalogService serves the product catalog, cache-aside against the
// ledger. The catalog changes rarely, so cache staleness up to the TTL is
// acceptable.
type CatalogService struct {
	ledger ports.LedgerPort
	cache  ports.CachePort
}

func NewCatalogService(ledger ports.LedgerPort, cache ports.CachePort) *CatalogService {
	return &CatalogService{ledger: ledger, cache: cache}
}

func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	const key = "products"
	if data, err := s.cache.Get(ctx, key); err == nil {
		var products []domain.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
	}

	products, err := s.ledger.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, products); err != nil {
		log.Printf("cache set failed for %s: %v", key, err)
	}
	return products, nil
}

func (s *CatalogService) ProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.ledger.GetProduct(ctx, productID)
}
