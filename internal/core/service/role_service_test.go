package service

import (
	"context"
	"errors"
	"testing"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

type stubRoleRepo struct {
	roles []domain.Role
	err   error
}

func (s *stubRoleRepo) ListRoles(_ context.Context) ([]domain.Role, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.roles, nil
}

func TestRoleService_ResolveName(t *testing.T) {
	svc := NewRoleService(&stubRoleRepo{roles: []domain.Role{
		{ID: 1, Name: "SALESPERSON"},
		{ID: 2, Name: "Accountant"},
	}})

	cases := []struct {
		roleID int
		want   string
	}{
		{1, "salesperson"},
		{2, "accountant"},
		{99, domain.RoleUnknown},
		{0, domain.RoleUnknown},
		{-1, domain.RoleUnknown},
	}
	for _, tc := range cases {
		got, err := svc.ResolveName(context.Background(), tc.roleID)
		if err != nil {
			t.Fatalf("ResolveName(%d) returned error: %v", tc.roleID, err)
		}
		if got != tc.want {
			t.Fatalf("ResolveName(%d) = %q, want %q", tc.roleID, got, tc.want)
		}
	}
}

func TestRoleService_ResolveName_BackendError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewRoleService(&stubRoleRepo{err: boom})

	if _, err := svc.ResolveName(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestRoleService_ListRoles(t *testing.T) {
	svc := NewRoleService(&stubRoleRepo{roles: []domain.Role{{ID: 1, Name: "salesperson"}}})

	roles, err := svc.ListRoles(context.Background())
	if err != nil {
		t.Fatalf("ListRoles returned error: %v", err)
	}
	if len(roles) != 1 || roles[0].Name != "salesperson" {
		t.Fatalf("unexpected roles: %+v", roles)
	}
}
