package cache

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"tradehub/internal/domain/identity"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/shared/constants"
	"tradehub/internal/shared/logger"
)

const (
	identityTTLJitter = 30 * time.Second
	identityNullTTL   = time.Minute

	fieldFirstName  = "first_name"
	fieldLastName   = "last_name"
	fieldUsername   = "username"
	fieldAvatar     = "avatar"
	fieldNullMarker = "_null"
)

// CachedIdentityResolver decorates a Resolver with a Redis cache-aside layer.
// Unknown parties are remembered briefly with a null marker so polling
// clients do not hit the database for the same missing id.
type CachedIdentityResolver struct {
	next   identity.Resolver
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewCachedIdentityResolver(next identity.Resolver, client *redis.Client, ttl time.Duration, logger logger.Interface) *CachedIdentityResolver {
	return &CachedIdentityResolver{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedIdentityResolver) key(partyType party.Type, id uint) string {
	return fmt.Sprintf("%s:%s:%d", constants.RedisKeyIdentity, partyType, id)
}

// Resolve serves from Redis when possible. Redis errors degrade to a direct
// lookup.
func (c *CachedIdentityResolver) Resolve(ctx context.Context, partyType party.Type, id uint) (*identity.Identity, error) {
	key := c.key(partyType, id)

	cached, err := c.client.HGetAll(ctx, key).Result()
	if err != nil {
		c.logger.Warnw("identity cache read failed",
			"party_type", partyType,
			"party_id", id,
			"error", err,
		)
		return c.next.Resolve(ctx, partyType, id)
	}
	if len(cached) > 0 {
		if cached[fieldNullMarker] == "1" {
			return nil, nil
		}
		return &identity.Identity{
			PartyType: partyType,
			PartyID:   id,
			FirstName: cached[fieldFirstName],
			LastName:  cached[fieldLastName],
			Username:  cached[fieldUsername],
			AvatarRef: cached[fieldAvatar],
		}, nil
	}

	resolved, err := c.next.Resolve(ctx, partyType, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, resolved)
	return resolved, nil
}

// Invalidate drops a cached identity after the owning subsystem changed it.
func (c *CachedIdentityResolver) Invalidate(ctx context.Context, partyType party.Type, id uint) error {
	if err := c.client.Del(ctx, c.key(partyType, id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate identity cache: %w", err)
	}
	return nil
}

func (c *CachedIdentityResolver) store(ctx context.Context, key string, resolved *identity.Identity) {
	var (
		fields map[string]interface{}
		ttl    time.Duration
	)
	if resolved == nil {
		fields = map[string]interface{}{fieldNullMarker: "1"}
		ttl = identityNullTTL
	} else {
		fields = map[string]interface{}{
			fieldFirstName: resolved.FirstName,
			fieldLastName:  resolved.LastName,
			fieldUsername:  resolved.Username,
			fieldAvatar:    resolved.AvatarRef,
		}
		ttl = c.ttl + rand.N(identityTTLJitter)
	}

	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warnw("identity cache write failed",
			"key", key,
			"error", err,
		)
	}
}
