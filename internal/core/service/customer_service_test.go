package service

import (
	"context"
	"errors"
	"testing"

	"github.com/salesmgmt/sales-system/internal/core/auth"
	"github.com/salesmgmt/sales-system/internal/core/domain"
	"github.com/salesmgmt/sales-system/internal/core/ports"
)

type stubCustomerRepo struct {
	created []*domain.Customer
}

func (r *stubCustomerRepo) FindByEmail(_ context.Context, _ string) (*domain.Customer, error) {
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	return nil, nil
}

func (r *stubCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	r.created = append(r.created, customer)
	return nil
}

func (r *stubCustomerRepo) Update(_ context.Context, _ *domain.Customer) error { return nil }
func (r *stubCustomerRepo) Delete(_ context.Context, _ int) error              { return nil }

func TestCustomerService_Register_HashesPassword(t *testing.T) {
	repo := &stubCustomerRepo{}
	svc := NewCustomerService(repo)

	err := svc.Register(context.Background(), ports.RegisterCustomerInput{
		Name:         "Dave",
		Email:        "dave@example.com",
		PortalAccess: true,
		Password:     "portal-pass",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected one created customer")
	}
	created := repo.created[0]
	if created.PasswordHash == "portal-pass" {
		t.Fatalf("expected password to be hashed")
	}
	if !auth.VerifyPassword("portal-pass", created.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestCustomerService_Register_PortalRequiresPassword(t *testing.T) {
	svc := NewCustomerService(&stubCustomerRepo{})

	err := svc.Register(context.Background(), ports.RegisterCustomerInput{
		Name:         "Dave",
		Email:        "dave@example.com",
		PortalAccess: true,
	})
	if !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestCustomerService_Register_NoPortalNoPassword(t *testing.T) {
	repo := &stubCustomerRepo{}
	svc := NewCustomerService(repo)

	err := svc.Register(context.Background(), ports.RegisterCustomerInput{
		Name:  "Walk-in",
		Email: "walkin@example.com",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if repo.created[0].PasswordHash != "" {
		t.Fatalf("expected no password hash for non-portal customer")
	}
}
