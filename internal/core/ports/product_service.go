package ports

import (
	"context"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

// ProductService implements product management.
type ProductService interface {
	Create(ctx context.Context, product *domain.Product) error
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	Update(ctx context.Context, id int, product *domain.Product) error
	Delete(ctx context.Context, id int) error
}
