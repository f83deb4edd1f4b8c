package resources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultCacheTTL is how long cached search results stay valid.
const DefaultCacheTTL = 24 * time.Hour

// Cache stores encoded search results by key. Get reports a miss with
// ok == false and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (val []byte, ok bool, err error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

// MemoryCache is an in-process Cache. It is safe for concurrent use.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	val     []byte
	expires time.Time
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: map[string]memoryEntry{}, now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && !c.now().Before(e.expires) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return e.val, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, val []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := memoryEntry{val: append([]byte(nil), val...)}
	if ttl > 0 {
		e.expires = c.now().Add(ttl)
	}
	c.entries[key] = e
	return nil
}

// RedisCache is a Cache backed by a Redis server.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache connects to the Redis server at rawURL
// (redis://[:password@]host:port/db) and verifies it with a ping.
func NewRedisCache(ctx context.Context, rawURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return NewRedisCacheFromClient(client), nil
}

// NewRedisCacheFromClient wraps an existing client.
func NewRedisCacheFromClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, prefix: "pathwise:search:"}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, val, ttl).Err()
}

// Close releases the underlying connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// cachingProvider serves repeated searches from a Cache. Failed searches
// are not cached.
type cachingProvider struct {
	inner  Provider
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

// WithCache wraps p so identical requests are answered from cache.
// Cache errors are logged and treated as misses.
func WithCache(p Provider, cache Cache, ttl time.Duration, logger *zap.Logger) Provider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cachingProvider{inner: p, cache: cache, ttl: ttl, logger: logger}
}

func (c *cachingProvider) Name() string { return c.inner.Name() }

func (c *cachingProvider) Search(ctx context.Context, req SearchRequest) ([]Resource, error) {
	key := cacheKey(c.inner.Name(), req)

	raw, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("search cache read failed", zap.String("provider", c.inner.Name()), zap.Error(err))
	}
	if ok {
		var rs []Resource
		if err := json.Unmarshal(raw, &rs); err == nil {
			return rs, nil
		}
	}

	rs, err := c.inner.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	if enc, err := json.Marshal(rs); err == nil {
		if err := c.cache.Set(ctx, key, enc, c.ttl); err != nil {
			c.logger.Warn("search cache write failed", zap.String("provider", c.inner.Name()), zap.Error(err))
		}
	}
	return rs, nil
}

func cacheKey(provider string, req SearchRequest) string {
	types := make([]string, len(req.ContentTypes))
	for i, t := range req.ContentTypes {
		types[i] = string(t)
	}
	return strings.Join([]string{
		provider,
		strings.ToLower(req.Term),
		string(req.Difficulty),
		strings.Join(types, ","),
		strconv.Itoa(req.MaxResults),
	}, "|")
}
