package service

import (
	"context"
	"fmt"

	"github.com/salesmgmt/sales-system/internal/core/auth"
	"github.com/salesmgmt/sales-system/internal/core/domain"
	"github.com/salesmgmt/sales-system/internal/core/ports"
)

// UserService implements staff user management.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]domain.UserWithRole, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Search(ctx context.Context, query string) ([]domain.UserWithRole, error) {
	return s.repo.Search(ctx, query)
}

func (s *UserService) GetByID(ctx context.Context, id int) (*domain.UserWithRole, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new staff user with a hashed password.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) error {
	hash, err := auth.HashPassword(in.Password, 0)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		RoleID:       in.RoleID,
		FullName:     in.FullName,
		Email:        in.Email,
	})
}

// UpdateDetails updates username/email and, when a new password is
// supplied, rehashes it. An empty password leaves the stored hash intact.
func (s *UserService) UpdateDetails(ctx context.Context, id int, in ports.UpdateUserInput) error {
	hash := ""
	if in.Password != "" {
		h, err := auth.HashPassword(in.Password, 0)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		hash = h
	}
	return s.repo.UpdateDetails(ctx, id, in.Username, in.Email, hash)
}

func (s *UserService) UpdateRole(ctx context.Context, id, roleID int) error {
	return s.repo.UpdateRole(ctx, id, roleID)
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
