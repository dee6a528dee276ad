package resolver

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestCachingResolverCachesAnswer(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	defer mr.Close()

	calls := 0
	upstream := &countingResolver{
		ans: Answer{Records: []string{"19036 8 2 aabb"}},
		count: &calls,
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewCachingResolverWithClient(upstream, client)
	ctx := context.Background()

	ans1, err := cache.Resolve(ctx, "example.", "DS")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	ans2, err := cache.Resolve(ctx, "example.", "DS")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if calls != 1 {
		t.Errorf("upstream called %d times, want 1 (second call should hit cache)", calls)
	}
	if len(ans1.Records) != 1 || len(ans2.Records) != 1 {
		t.Errorf("unexpected answers: %+v %+v", ans1, ans2)
	}
}

func TestCachingResolverPing(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewCachingResolverWithClient(&countingResolver{}, client)
	if err := cache.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

type countingResolver struct {
	ans   Answer
	count *int
}

func (c *countingResolver) Resolve(ctx context.Context, name, rrtype string) (Answer, error) {
	if c.count != nil {
		*c.count++
	}
	return c.ans, nil
}
