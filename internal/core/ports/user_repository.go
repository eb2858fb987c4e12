package ports

import (
	"context"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

// UserRepository defines persistence for staff users.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int) (*domain.UserWithRole, error)
	List(ctx context.Context) ([]domain.UserWithRole, error)
	Search(ctx context.Context, query string) ([]domain.UserWithRole, error)
	Create(ctx context.Context, user *domain.User) error
	UpdateDetails(ctx context.Context, id int, username, email, passwordHash string) error
	UpdateRole(ctx context.Context, id, roleID int) error
	Delete(ctx context.Context, id int) error
}
