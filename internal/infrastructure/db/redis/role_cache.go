package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/salesmgmt/sales-system/internal/core/domain"
	"github.com/salesmgmt/sales-system/internal/core/ports"
)

const (
	roleCacheKey = "roles:all"
	roleCacheTTL = 5 * time.Minute
)

// RoleCache is a caching decorator over a RoleRepository. The role table is
// tiny and read on every staff login, so it is cached whole as a JSON list.
// Cache failures degrade to the underlying store rather than failing the
// lookup.
type RoleCache struct {
	client *redis.Client
	next   ports.RoleRepository
	log    zerolog.Logger
}

// NewRoleCache wraps next with a Redis-backed cache.
func NewRoleCache(client *redis.Client, next ports.RoleRepository, log zerolog.Logger) *RoleCache {
	return &RoleCache{client: client, next: next, log: log}
}

func (c *RoleCache) ListRoles(ctx context.Context) ([]domain.Role, error) {
	payload, err := c.client.Get(ctx, roleCacheKey).Bytes()
	if err == nil {
		var roles []domain.Role
		if err := json.Unmarshal(payload, &roles); err == nil {
			return roles, nil
		}
		// Unreadable payload: fall through and rewrite it.
	} else if err != redis.Nil {
		c.log.Warn().Err(err).Msg("role cache read failed, falling back to store")
	}

	roles, err := c.next.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(roles); err == nil {
		if err := c.client.Set(ctx, roleCacheKey, payload, roleCacheTTL).Err(); err != nil {
			c.log.Warn().Err(err).Msg("role cache write failed")
		}
	}
	return roles, nil
}

// Invalidate drops the cached role list so the next read hits the store.
func (c *RoleCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, roleCacheKey).Err(); err != nil {
		return fmt.Errorf("invalidate role cache: %w", err)
	}
	return nil
}

var _ ports.RoleRepository = (*RoleCache)(nil)
