package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/craviont/craviont-site-api/internal/form"
)

// InflightGuard allows one pending dispatch per key. Acquire returns form.ErrSubmissionInFlight
// while the key is held.
type InflightGuard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisInflightGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisInflightGuard guards keys with SET NX. The TTL only bounds locks left behind by a crashed
// process; dispatches themselves are not timed out.
func NewRedisInflightGuard(client *redis.Client, ttl time.Duration) InflightGuard {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &redisInflightGuard{client: client, ttl: ttl}
}

func (g *redisInflightGuard) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := fmt.Sprintf("lead:inflight:%s", key)
	token := uuid.NewString()

	ok, err := g.client.SetNX(ctx, redisKey, token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire inflight lock: %w", err)
	}
	if !ok {
		return nil, form.ErrSubmissionInFlight
	}

	return func() {
		_ = releaseScript.Run(context.Background(), g.client, []string{redisKey}, token).Err()
	}, nil
}

type memoryInflightGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMemoryInflightGuard guards keys within the current process.
func NewMemoryInflightGuard() InflightGuard {
	return &memoryInflightGuard{held: make(map[string]struct{})}
}

func (g *memoryInflightGuard) Acquire(_ context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.held[key]; busy {
		return nil, form.ErrSubmissionInFlight
	}
	g.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}
