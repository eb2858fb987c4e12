package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/salesmgmt/sales-system/internal/core/auth"
	"github.com/salesmgmt/sales-system/internal/core/domain"
	"github.com/salesmgmt/sales-system/internal/core/ports"
)

// OperatorCredentials is the fixed operator override pair, injected from
// configuration rather than read from ambient state.
type OperatorCredentials struct {
	Username string
	Password string
}

// AuthService is the login state machine. Principal sources are probed
// strictly in order — operator override, staff store, customer store — and
// the chain short-circuits on the first source that definitively matches:
// a staff record found with a wrong password is a terminal failure, never a
// fallthrough to the customer store.
type AuthService struct {
	users     ports.UserFinder
	customers ports.CustomerFinder
	roles     ports.RoleService
	tokens    *auth.TokenIssuer
	operator  OperatorCredentials
}

func NewAuthService(
	users ports.UserFinder,
	customers ports.CustomerFinder,
	roles ports.RoleService,
	tokens *auth.TokenIssuer,
	operator OperatorCredentials,
) *AuthService {
	return &AuthService{
		users:     users,
		customers: customers,
		roles:     roles,
		tokens:    tokens,
		operator:  operator,
	}
}

// Login resolves identifier/password to a principal and a signed session
// token. The identifier is a staff username or a customer email. Wrong or
// unknown credentials surface uniformly as domain.ErrInvalidCredentials;
// any store failure aborts the chain with domain.ErrBackendUnavailable.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.Principal, string, error) {
	if identifier == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	// 1. Operator override: no store is consulted.
	if identifier == s.operator.Username && password == s.operator.Password {
		principal := domain.NewOperatorPrincipal(identifier)
		return s.issue(principal)
	}

	// 2. Staff store, keyed by username. A found record is authoritative
	// for this identifier regardless of password outcome.
	user, err := s.users.FindByUsername(ctx, identifier)
	switch {
	case err == nil:
		if !auth.VerifyPassword(password, user.PasswordHash) {
			return nil, "", domain.ErrInvalidCredentials
		}
		roleName, err := s.roles.ResolveName(ctx, user.RoleID)
		if err != nil {
			return nil, "", backendFailure("resolve role", err)
		}
		principal := &domain.Principal{
			ID:       user.ID,
			Username: user.Username,
			Role:     roleName,
			Kind:     domain.KindStaff,
		}
		return s.issue(principal)
	case errors.Is(err, domain.ErrUserNotFound):
		// Not a staff identifier; try the customer store.
	default:
		return nil, "", backendFailure("staff lookup", err)
	}

	// 3. Customer store, keyed by email.
	customer, err := s.customers.FindByEmail(ctx, identifier)
	switch {
	case err == nil:
		if !auth.VerifyPassword(password, customer.PasswordHash) {
			return nil, "", domain.ErrInvalidCredentials
		}
		principal := &domain.Principal{
			ID:       customer.ID,
			Username: customer.Email,
			Role:     domain.RoleCustomer,
			Kind:     domain.KindCustomer,
		}
		return s.issue(principal)
	case errors.Is(err, domain.ErrCustomerNotFound):
		return nil, "", domain.ErrInvalidCredentials
	default:
		return nil, "", backendFailure("customer lookup", err)
	}
}

func (s *AuthService) issue(principal *domain.Principal) (*domain.Principal, string, error) {
	token, err := s.tokens.Issue(principal.ID, principal.Username, principal.Role)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return principal, token, nil
}

func backendFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrBackendUnavailable, op, err)
}
