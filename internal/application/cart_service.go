// internal/application/cart_service.go
package application

import (
	"context"
	"errors"

	"github.com/macgtech/storefront/internal/domain"
	"github.com/macgtech/storefront/internal/ports"
)

// CartService mirrors the client's cart into the ledger. Writes are
// synchronous with surfaced errors and last-write-wins; the ledger copy is
// authoritative. Line totals are always recomputed here, never trusted
// from the client.
type CartService struct {
	ledger ports.LedgerPort
}

func NewCartService(ledger ports.LedgerPort) *CartService {
	return &CartService{ledger: ledger}
}

func (s *CartService) Get(ctx context.Context, email string) ([]domain.CartItem, error) {
	return s.ledger.GetCart(ctx, email)
}

func (s *CartService) Replace(ctx context.Context, email string, items []domain.CartItem) ([]domain.CartItem, error) {
	normalized := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID == "" {
			return nil, errors.New("cart item missing product id")
		}
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		item.TotalPrice = float64(item.Quantity) * item.Price
		normalized = append(normalized, item)
	}
	if err := s.ledger.UpdateCart(ctx, email, normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func (s *CartService) Clear(ctx context.Context, email string) error {
	return s.ledger.UpdateCart(ctx, email, []domain.CartItem{})
}
