package ports

import (
	"context"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

// CartService implements cart management for customers.
type CartService interface {
	// AddItem inserts a new line, or increments the quantity of the existing
	// line for the same customer/product pair.
	AddItem(ctx context.Context, item *domain.CartItem) error
	ListByCustomer(ctx context.Context, customerID int) ([]domain.CartItem, error)
	// UpdateQuantity sets the line quantity; zero or negative removes the line.
	UpdateQuantity(ctx context.Context, id, quantity int) error
	Delete(ctx context.Context, id int) error
}
