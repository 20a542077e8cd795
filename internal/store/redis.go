package store

import (
    "context"
    "encoding/json"
    "time"

    "github.com/redis/go-redis/v9"
)

const snapshotPrefix = "session:snapshot:"

// RedisProvider stores one JSON snapshot per browser session under
// session:snapshot:<id>, each with a TTL so abandoned sessions expire
// on their own.
type RedisProvider struct {
    client *redis.Client
    ttl    time.Duration
}

// NewRedisProvider wraps an existing redis client. ttl bounds how long
// an untouched snapshot survives; it should match the session cookie
// lifetime.
func NewRedisProvider(client *redis.Client, ttl time.Duration) *RedisProvider {
    return &RedisProvider{client: client, ttl: ttl}
}

// For returns a Store bound to the given session ID.
func (p *RedisProvider) For(sessionID string) Store {
    return &redisStore{client: p.client, key: snapshotPrefix + sessionID, ttl: p.ttl}
}

type redisStore struct {
    client *redis.Client
    key    string
    ttl    time.Duration
}

func (r *redisStore) Get(ctx context.Context) (*Snapshot, error) {
    val, err := r.client.Get(ctx, r.key).Result()
    if err == redis.Nil {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    var s Snapshot
    if err := json.Unmarshal([]byte(val), &s); err != nil {
        return nil, ErrCorruptSnapshot
    }
    // A snapshot without a token is as unusable as one that does not parse.
    if s.Token == "" {
        return nil, ErrCorruptSnapshot
    }
    return &s, nil
}

func (r *redisStore) Set(ctx context.Context, s Snapshot) error {
    data, err := json.Marshal(s)
    if err != nil {
        return err
    }
    return r.client.Set(ctx, r.key, data, r.ttl).Err()
}

func (r *redisStore) Clear(ctx context.Context) error {
    return r.client.Del(ctx, r.key).Err()
}
