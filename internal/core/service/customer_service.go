package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/salesmgmt/sales-system/internal/core/auth"
	"github.com/salesmgmt/sales-system/internal/core/domain"
	"github.com/salesmgmt/sales-system/internal/core/ports"
)

// registrationHashCost matches the cost customers were historically hashed
// with; staff users use the bcrypt default.
const registrationHashCost = 12

var ErrPasswordRequired = errors.New("password is required for portal access")

// CustomerService implements customer registration and management.
type CustomerService struct {
	repo ports.CustomerRepository
}

func NewCustomerService(repo ports.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// Register stores a new customer. A portal-enabled customer must supply a
// password; it is hashed before it ever reaches the repository.
func (s *CustomerService) Register(ctx context.Context, in ports.RegisterCustomerInput) error {
	if in.PortalAccess && in.Password == "" {
		return ErrPasswordRequired
	}

	customer := &domain.Customer{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		PortalAccess: in.PortalAccess,
	}

	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password, registrationHashCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		customer.PasswordHash = hash
	}

	return s.repo.Create(ctx, customer)
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *CustomerService) Update(ctx context.Context, customer *domain.Customer) error {
	return s.repo.Update(ctx, customer)
}

func (s *CustomerService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
