package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/salesmgmt/sales-system/internal/core/domain"
	"github.com/salesmgmt/sales-system/internal/core/ports"
)

// RoleService resolves role ids against the authoritative role table.
type RoleService struct {
	repo ports.RoleRepository
}

func NewRoleService(repo ports.RoleRepository) *RoleService {
	return &RoleService{repo: repo}
}

// ListRoles returns the full role table.
func (s *RoleService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// ResolveName maps a role id to its lowercase name. The mapping is total:
// an id missing from the table resolves to domain.RoleUnknown rather than
// failing, so a stale role_id on a staff row can never block login.
func (s *RoleService) ResolveName(ctx context.Context, roleID int) (string, error) {
	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return "", fmt.Errorf("list roles: %w", err)
	}

	for _, role := range roles {
		if role.ID == roleID {
			return strings.ToLower(role.Name), nil
		}
	}
	return domain.RoleUnknown, nil
}
