package ports

import (
	"context"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

// RoleRepository exposes the authoritative role table. Implementations may
// be the database itself or a caching decorator in front of it.
type RoleRepository interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
}
