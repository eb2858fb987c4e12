package ports

import (
	"context"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

// CreateUserInput carries the fields accepted when creating a staff user.
type CreateUserInput struct {
	Username string
	Password string
	RoleID   int
	FullName string
	Email    string
}

// UpdateUserInput carries the mutable staff user fields. Password is
// optional; empty means unchanged.
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
}

// UserService implements staff user management.
type UserService interface {
	List(ctx context.Context) ([]domain.UserWithRole, error)
	Search(ctx context.Context, query string) ([]domain.UserWithRole, error)
	GetByID(ctx context.Context, id int) (*domain.UserWithRole, error)
	Create(ctx context.Context, in CreateUserInput) error
	UpdateDetails(ctx context.Context, id int, in UpdateUserInput) error
	UpdateRole(ctx context.Context, id, roleID int) error
	Delete(ctx context.Context, id int) error
}
