package ports

import (
	"context"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

// CustomerRepository defines persistence for customers.
type CustomerRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int) error
}
