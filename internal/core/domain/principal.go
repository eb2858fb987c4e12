package domain

import "errors"

// PrincipalKind discriminates which store, if any, a principal id refers to.
type PrincipalKind string

const (
	KindOperator PrincipalKind = "operator"
	KindStaff    PrincipalKind = "staff"
	KindCustomer PrincipalKind = "customer"
)

// Canonical role names.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
	// RoleUnknown is returned when a role id has no entry in the role table.
	RoleUnknown = "unknown"
)

// OperatorID is the reserved subject id of the hardcoded operator account.
const OperatorID = 0

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrBackendUnavailable = errors.New("backend unavailable")

// Principal is the authenticated identity produced by a successful login.
// It is built fresh per login and never persisted; the session token carries
// its durable representation.
type Principal struct {
	ID       int           `json:"id"`
	Username string        `json:"username"` // staff username or customer email
	Role     string        `json:"role"`     // lowercase role name
	Kind     PrincipalKind `json:"-"`
}

// NewOperatorPrincipal returns the principal for the hardcoded operator.
func NewOperatorPrincipal(username string) *Principal {
	return &Principal{
		ID:       OperatorID,
		Username: username,
		Role:     RoleAdmin,
		Kind:     KindOperator,
	}
}
