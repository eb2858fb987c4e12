package service

import (
	"context"
	"testing"

	"github.com/salesmgmt/sales-system/internal/core/auth"
	"github.com/salesmgmt/sales-system/internal/core/domain"
	"github.com/salesmgmt/sales-system/internal/core/ports"
)

type stubUserRepo struct {
	created *domain.User

	updatedID   int
	updatedName string
	updatedMail string
	updatedHash string
}

func (s *stubUserRepo) FindByUsername(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) GetByID(context.Context, int) (*domain.UserWithRole, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) List(context.Context) ([]domain.UserWithRole, error) { return nil, nil }

func (s *stubUserRepo) Search(context.Context, string) ([]domain.UserWithRole, error) {
	return nil, nil
}

func (s *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	s.created = user
	return nil
}

func (s *stubUserRepo) UpdateDetails(_ context.Context, id int, username, email, passwordHash string) error {
	s.updatedID = id
	s.updatedName = username
	s.updatedMail = email
	s.updatedHash = passwordHash
	return nil
}

func (s *stubUserRepo) UpdateRole(context.Context, int, int) error { return nil }
func (s *stubUserRepo) Delete(context.Context, int) error          { return nil }

func TestUserCreateHashesPassword(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewUserService(repo)

	err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "thandi",
		Password: "secret",
		RoleID:   2,
		FullName: "Thandi M",
		Email:    "thandi@example.com",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if repo.created == nil {
		t.Fatal("repository Create was not called")
	}
	if repo.created.PasswordHash == "secret" || repo.created.PasswordHash == "" {
		t.Fatalf("password stored as %q, want bcrypt hash", repo.created.PasswordHash)
	}
	if !auth.VerifyPassword("secret", repo.created.PasswordHash) {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestUserUpdateDetailsRehashesNewPassword(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewUserService(repo)

	err := svc.UpdateDetails(context.Background(), 7, ports.UpdateUserInput{
		Username: "thandi",
		Email:    "new@example.com",
		Password: "fresh-pass",
	})
	if err != nil {
		t.Fatalf("UpdateDetails: %v", err)
	}
	if repo.updatedID != 7 || repo.updatedName != "thandi" || repo.updatedMail != "new@example.com" {
		t.Errorf("update = (%d, %q, %q)", repo.updatedID, repo.updatedName, repo.updatedMail)
	}
	if !auth.VerifyPassword("fresh-pass", repo.updatedHash) {
		t.Error("new hash does not verify against the new password")
	}
}

func TestUserUpdateDetailsEmptyPasswordKeepsHash(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewUserService(repo)

	err := svc.UpdateDetails(context.Background(), 7, ports.UpdateUserInput{
		Username: "thandi",
		Email:    "new@example.com",
	})
	if err != nil {
		t.Fatalf("UpdateDetails: %v", err)
	}
	if repo.updatedHash != "" {
		t.Errorf("hash = %q, want empty so the repository keeps the current one", repo.updatedHash)
	}
}
