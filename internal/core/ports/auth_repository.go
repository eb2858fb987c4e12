package ports

import (
	"context"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

// UserFinder is the slice of the staff store the credential resolver needs.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// CustomerFinder is the slice of the customer store the credential resolver
// needs.
type CustomerFinder interface {
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
}
