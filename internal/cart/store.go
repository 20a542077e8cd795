package cart

import (
    "context"
    "encoding/json"
    "sync"
    "time"

    "github.com/redis/go-redis/v9"
)

const cartPrefix = "cart:"

// Store persists carts keyed by browser session ID. A missing cart
// reads back empty, never as an error.
type Store interface {
    Get(ctx context.Context, sessionID string) (Cart, error)
    Save(ctx context.Context, sessionID string, c Cart) error
    Clear(ctx context.Context, sessionID string) error
}

// RedisStore keeps carts in redis with a TTL so abandoned carts expire.
type RedisStore struct {
    client *redis.Client
    ttl    time.Duration
}

// NewRedisStore wraps an existing redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
    return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (Cart, error) {
    val, err := s.client.Get(ctx, cartPrefix+sessionID).Result()
    if err == redis.Nil {
        return Cart{}, nil
    }
    if err != nil {
        return Cart{}, err
    }
    var c Cart
    if err := json.Unmarshal([]byte(val), &c); err != nil {
        // An unreadable cart is treated like an empty one; the worst
        // case is the customer re-adding items.
        return Cart{}, nil
    }
    return c, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, c Cart) error {
    data, err := json.Marshal(c)
    if err != nil {
        return err
    }
    return s.client.Set(ctx, cartPrefix+sessionID, data, s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
    return s.client.Del(ctx, cartPrefix+sessionID).Err()
}

// MemoryStore is the in-process fallback used in tests and when redis
// is unavailable at startup.
type MemoryStore struct {
    mu    sync.Mutex
    carts map[string]Cart
}

// NewMemoryStore returns an empty in-memory cart store.
func NewMemoryStore() *MemoryStore {
    return &MemoryStore{carts: make(map[string]Cart)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (Cart, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.carts[sessionID], nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, c Cart) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.carts[sessionID] = c
    return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    delete(s.carts, sessionID)
    return nil
}
