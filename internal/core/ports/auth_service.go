package ports

import (
	"context"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

// AuthService resolves submitted credentials against the operator override,
// the staff store and the customer store, and mints a session token for the
// matched principal.
type AuthService interface {
	Login(ctx context.Context, identifier, password string) (*domain.Principal, string, error)
}
