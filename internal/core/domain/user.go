package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username or email already exists")

// User models a staff member (salesperson, accountant, ...) in the system.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	RoleID       int    `json:"role_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
}

// UserWithRole is a user joined with its resolved role, as listed by the
// user management endpoints.
type UserWithRole struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}
