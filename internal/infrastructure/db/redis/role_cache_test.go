package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/salesmgmt/sales-system/internal/core/domain"
)

type countingRoleRepo struct {
	roles []domain.Role
	err   error
	calls int
}

func (r *countingRoleRepo) ListRoles(_ context.Context) ([]domain.Role, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.roles, nil
}

func newTestCache(t *testing.T, next *countingRoleRepo) (*RoleCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRoleCache(client, next, zerolog.Nop()), mr
}

func TestRoleCache_ColdThenWarm(t *testing.T) {
	repo := &countingRoleRepo{roles: []domain.Role{{ID: 1, Name: "salesperson"}, {ID: 2, Name: "accountant"}}}
	cache, _ := newTestCache(t, repo)

	for i := 0; i < 3; i++ {
		roles, err := cache.ListRoles(context.Background())
		if err != nil {
			t.Fatalf("list roles: %v", err)
		}
		if len(roles) != 2 || roles[0].Name != "salesperson" {
			t.Fatalf("unexpected roles: %+v", roles)
		}
	}

	if repo.calls != 1 {
		t.Fatalf("expected a single store read, got %d", repo.calls)
	}
}

func TestRoleCache_Invalidate(t *testing.T) {
	repo := &countingRoleRepo{roles: []domain.Role{{ID: 1, Name: "salesperson"}}}
	cache, _ := newTestCache(t, repo)

	if _, err := cache.ListRoles(context.Background()); err != nil {
		t.Fatalf("list roles: %v", err)
	}
	if err := cache.Invalidate(context.Background()); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, err := cache.ListRoles(context.Background()); err != nil {
		t.Fatalf("list roles: %v", err)
	}

	if repo.calls != 2 {
		t.Fatalf("expected store re-read after invalidation, got %d calls", repo.calls)
	}
}

func TestRoleCache_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	cache, _ := newTestCache(t, &countingRoleRepo{err: boom})

	if _, err := cache.ListRoles(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestRoleCache_CorruptPayloadRewritten(t *testing.T) {
	repo := &countingRoleRepo{roles: []domain.Role{{ID: 1, Name: "salesperson"}}}
	cache, mr := newTestCache(t, repo)

	if err := mr.Set(roleCacheKey, "{not json"); err != nil {
		t.Fatalf("seed corrupt payload: %v", err)
	}

	roles, err := cache.ListRoles(context.Background())
	if err != nil {
		t.Fatalf("list roles: %v", err)
	}
	if len(roles) != 1 || repo.calls != 1 {
		t.Fatalf("expected fallback to store (roles=%+v calls=%d)", roles, repo.calls)
	}
}
