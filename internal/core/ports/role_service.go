package ports

import (
	"context"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

// RoleService resolves numeric role ids to canonical lowercase role names.
type RoleService interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
	// ResolveName is total over role ids: a miss yields domain.RoleUnknown,
	// an error is returned only when the role table cannot be read.
	ResolveName(ctx context.Context, roleID int) (string, error)
}
