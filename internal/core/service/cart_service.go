package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/salesmgmt/sales-system/internal/core/domain"
	"github.com/salesmgmt/sales-system/internal/core/ports"
)

// CartService implements cart management.
type CartService struct {
	repo ports.CartRepository
}

func NewCartService(repo ports.CartRepository) *CartService {
	return &CartService{repo: repo}
}

// AddItem adds a product line to a customer's cart. Adding a product that
// is already in the cart increments the existing line instead of creating a
// duplicate.
func (s *CartService) AddItem(ctx context.Context, item *domain.CartItem) error {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	existing, err := s.repo.FindItem(ctx, item.CustomerID, item.ProductID)
	switch {
	case err == nil:
		return s.repo.UpdateQuantity(ctx, existing.ID, existing.Quantity+item.Quantity)
	case errors.Is(err, domain.ErrCartItemNotFound):
		return s.repo.Insert(ctx, item)
	default:
		return fmt.Errorf("find cart item: %w", err)
	}
}

func (s *CartService) ListByCustomer(ctx context.Context, customerID int) ([]domain.CartItem, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

// UpdateQuantity sets a line's quantity. Zero or a negative value removes
// the line entirely.
func (s *CartService) UpdateQuantity(ctx context.Context, id, quantity int) error {
	if quantity <= 0 {
		return s.repo.Delete(ctx, id)
	}
	return s.repo.UpdateQuantity(ctx, id, quantity)
}

func (s *CartService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
