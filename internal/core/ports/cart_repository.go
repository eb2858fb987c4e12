package ports

import (
	"context"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

// CartRepository defines persistence for cart lines.
type CartRepository interface {
	// FindItem returns the existing line for a customer/product pair, or
	// domain.ErrCartItemNotFound.
	FindItem(ctx context.Context, customerID, productID int) (*domain.CartItem, error)
	Insert(ctx context.Context, item *domain.CartItem) error
	ListByCustomer(ctx context.Context, customerID int) ([]domain.CartItem, error)
	UpdateQuantity(ctx context.Context, id, quantity int) error
	Delete(ctx context.Context, id int) error
}
