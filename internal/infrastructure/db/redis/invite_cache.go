package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smartscheduler/meeting-system/internal/core/domain"
)

// cacheTTL bounds staleness on the public resolve path. A link's own expiry
// is always re-checked at resolution time, so a stale entry can never extend
// access past the link's lifetime.
const cacheTTL = 5 * time.Minute

// InviteCache is a read-through cache of invite link records keyed by token.
// Key format: invite:<token>
type InviteCache struct {
	client *redis.Client
}

// NewInviteCache creates an InviteCache wrapping the given Redis client.
func NewInviteCache(client *redis.Client) *InviteCache {
	return &InviteCache{client: client}
}

type cachedLink struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	Token     string     `json:"token"`
	Scope     string     `json:"scope"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Get returns the cached link for token, or (nil, nil) on a miss.
func (c *InviteCache) Get(ctx context.Context, token string) (*domain.InviteLink, error) {
	raw, err := c.client.Get(ctx, c.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("invite cache get: %w", err)
	}

	var cl cachedLink
	if err := json.Unmarshal(raw, &cl); err != nil {
		return nil, fmt.Errorf("invite cache decode: %w", err)
	}

	return &domain.InviteLink{
		ID:        cl.ID,
		OwnerID:   cl.OwnerID,
		Token:     cl.Token,
		Scope:     domain.InviteScope(cl.Scope),
		ExpiresAt: cl.ExpiresAt,
		CreatedAt: cl.CreatedAt,
	}, nil
}

// Set stores the link under its token for cacheTTL.
func (c *InviteCache) Set(ctx context.Context, link *domain.InviteLink) error {
	raw, err := json.Marshal(cachedLink{
		ID:        link.ID,
		OwnerID:   link.OwnerID,
		Token:     link.Token,
		Scope:     string(link.Scope),
		ExpiresAt: link.ExpiresAt,
		CreatedAt: link.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("invite cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(link.Token), raw, cacheTTL).Err()
}

func (c *InviteCache) key(token string) string {
	return "invite:" + token
}
