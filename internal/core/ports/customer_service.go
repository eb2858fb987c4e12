package ports

import (
	"context"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

// RegisterCustomerInput carries the fields accepted at customer registration.
type RegisterCustomerInput struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	PortalAccess bool
	Password     string
}

// CustomerService implements customer management.
type CustomerService interface {
	Register(ctx context.Context, in RegisterCustomerInput) error
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int) error
}
