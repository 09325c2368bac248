package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/memberhub/member-api/internal/api/metrics"
	"github.com/memberhub/member-api/internal/core/ports"
)

// RoleCache is a read-through cache in front of a RoleRepository. The
// authentication middleware looks up role assignments on every bearer
// request, so cached role sets keep that lookup off the primary store.
// Entries expire after ttl; assigning a role invalidates the member's entry.
// Cache failures fall back to the underlying repository.
type RoleCache struct {
	client *redis.Client
	next   ports.RoleRepository
	ttl    time.Duration
}

// NewRoleCache wraps next with a Redis-backed role-set cache.
func NewRoleCache(client *redis.Client, next ports.RoleRepository, ttl time.Duration) *RoleCache {
	return &RoleCache{client: client, next: next, ttl: ttl}
}

func (c *RoleCache) Assign(ctx context.Context, memberID int64, role string) error {
	if err := c.next.Assign(ctx, memberID, role); err != nil {
		return err
	}
	// Drop the stale entry so the next lookup sees the new assignment.
	_ = c.client.Del(ctx, c.key(memberID)).Err()
	return nil
}

func (c *RoleCache) FindAllByMemberID(ctx context.Context, memberID int64) ([]string, error) {
	cached, err := c.client.Get(ctx, c.key(memberID)).Result()
	if err == nil {
		metrics.RoleCacheTotal.WithLabelValues("hit").Inc()
		return decodeRoles(cached), nil
	}
	if !errors.Is(err, redis.Nil) {
		// Cache unavailable: serve from the repository.
		return c.next.FindAllByMemberID(ctx, memberID)
	}

	metrics.RoleCacheTotal.WithLabelValues("miss").Inc()
	roles, err := c.next.FindAllByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	_ = c.client.Set(ctx, c.key(memberID), encodeRoles(roles), c.ttl).Err()
	return roles, nil
}

func (c *RoleCache) key(memberID int64) string {
	return fmt.Sprintf("roles:%d", memberID)
}

// encodeRoles joins role tags with commas. Tags are plain identifiers, never
// containing the separator. An empty set encodes as the empty string so that
// "no roles" is cacheable too.
func encodeRoles(roles []string) string {
	return strings.Join(roles, ",")
}

func decodeRoles(encoded string) []string {
	if encoded == "" {
		return nil
	}
	return strings.Split(encoded, ",")
}
