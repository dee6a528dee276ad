package resolver

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheTTL bounds how long a resolved answer is trusted without
// re-querying; DNSSEC-validated answers still expire with their record
// TTLs, but this cache deliberately uses a short fixed window rather than
// tracking per-record TTLs, since chain builds are infrequent and a stale
// hit only costs one extra query on the next build.
const cacheTTL = 30 * time.Second

// CachingResolver decorates another Resolver with a Redis-backed cache,
// keyed on (rrtype, name) rather than a raw DNS record cache key.
type CachingResolver struct {
	next   Resolver
	client *redis.Client
}

func NewCachingResolver(next Resolver, addr string) *CachingResolver {
	return &CachingResolver{
		next:   next,
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// NewCachingResolverWithClient allows tests to inject a client pointed at
// an in-memory Redis server (e.g. miniredis) instead of dialing addr.
func NewCachingResolverWithClient(next Resolver, client *redis.Client) *CachingResolver {
	return &CachingResolver{next: next, client: client}
}

func (c *CachingResolver) cacheKey(name, rrtype string) string {
	return "chain:" + rrtype + ":" + name
}

func (c *CachingResolver) Resolve(ctx context.Context, name, rrtype string) (Answer, error) {
	key := c.cacheKey(name, rrtype)

	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var ans Answer
		if jsonErr := json.Unmarshal(raw, &ans); jsonErr == nil {
			return ans, nil
		}
	}

	ans, err := c.next.Resolve(ctx, name, rrtype)
	if err != nil {
		return Answer{}, err
	}

	if raw, err := json.Marshal(ans); err == nil {
		c.client.Set(ctx, key, raw, cacheTTL)
	}

	return ans, nil
}

func (c *CachingResolver) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

var _ Resolver = (*CachingResolver)(nil)
