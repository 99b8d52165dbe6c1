package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Zomujo/dial4inclusion/internal/domain"
)

const userCacheKeyPrefix = "d4i:user:"

// UserAPI is the slice of the gateway the lookup cache needs.
type UserAPI interface {
	GetUser(ctx context.Context, token, id string) (*domain.User, error)
}

// LookupResult records a best-effort user fetch. Err is set when the lookup
// failed; presentation falls back to a placeholder in that case.
type LookupResult struct {
	User *domain.User
	Err  error
}

type cacheEntry struct {
	result  LookupResult
	expires time.Time
}

// UserCache resolves users by id for createdBy/assignedTo backfill, caching
// results per id with a TTL. A reachable Redis shares resolved users between
// runs; otherwise the in-process map alone serves the TTL window. Failed
// lookups are cached too, so a flapping endpoint is not hammered on every
// re-render.
type UserCache struct {
	api    UserAPI
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger

	mu      sync.Mutex
	local   map[string]cacheEntry
	loading map[string]bool
}

// NewUserCache constructs the cache. rdb may be nil.
func NewUserCache(api UserAPI, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *UserCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &UserCache{
		api:     api,
		rdb:     rdb,
		ttl:     ttl,
		logger:  logger,
		local:   make(map[string]cacheEntry),
		loading: make(map[string]bool),
	}
}

// Lookup resolves one user id, serving from cache inside the TTL window.
func (c *UserCache) Lookup(ctx context.Context, token, id string) LookupResult {
	c.mu.Lock()
	if entry, ok := c.local[id]; ok && time.Now().Before(entry.expires) {
		c.mu.Unlock()
		return entry.result
	}
	c.loading[id] = true
	c.mu.Unlock()

	result := c.resolve(ctx, token, id)

	c.mu.Lock()
	c.local[id] = cacheEntry{result: result, expires: time.Now().Add(c.ttl)}
	delete(c.loading, id)
	c.mu.Unlock()
	return result
}

// Loading reports whether a lookup for the id is in flight.
func (c *UserCache) Loading(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading[id]
}

func (c *UserCache) resolve(ctx context.Context, token, id string) LookupResult {
	if user := c.fromRedis(ctx, id); user != nil {
		return LookupResult{User: user}
	}

	user, err := c.api.GetUser(ctx, token, id)
	if err != nil {
		c.logger.Debug("user lookup failed", zap.String("user_id", id), zap.Error(err))
		return LookupResult{Err: err}
	}
	c.toRedis(ctx, id, user)
	return LookupResult{User: user}
}

func (c *UserCache) fromRedis(ctx context.Context, id string) *domain.User {
	if c.rdb == nil {
		return nil
	}
	raw, err := c.rdb.Get(ctx, userCacheKeyPrefix+id).Bytes()
	if err != nil {
		return nil
	}
	var user domain.User
	if json.Unmarshal(raw, &user) != nil {
		return nil
	}
	return &user
}

func (c *UserCache) toRedis(ctx context.Context, id string, user *domain.User) {
	if c.rdb == nil {
		return
	}
	encoded, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, userCacheKeyPrefix+id, encoded, c.ttl).Err(); err != nil {
		c.logger.Debug("user cache write failed", zap.String("user_id", id), zap.Error(err))
	}
}
