package domain

import "errors"

var ErrCustomerNotFound = errors.New("customer not found")

// Customer models a buyer with an optional self-service portal account.
type Customer struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	PortalAccess bool   `json:"portal_access"`
	PasswordHash string `json:"-"`
}
