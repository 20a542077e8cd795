package config

import (
    "time"
)

// CacheConfig controls the redis response cache in front of the public
// catalog endpoints. The catalog changes rarely and is read on every
// page view, so even a short TTL removes most backend round-trips.
// When Enabled is false or no redis client is available the middleware
// becomes a pass-through.
type CacheConfig struct {
    Enabled      bool
    TTL          time.Duration
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig reads cache settings from the environment with
// defaults suited to catalog pages.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      getenv("CACHE_ENABLED", "true") == "true",
        TTL:          durDefault("CACHE_TTL", 60*time.Second),
        Prefix:       getenv("CACHE_PREFIX", "catalog"),
        MaxBodyBytes: intDefault("CACHE_MAX_BODY_BYTES", 1<<20),
    }
}

func durDefault(key string, def time.Duration) time.Duration {
    s := getenv(key, "")
    if s == "" {
        return def
    }
    d, err := time.ParseDuration(s)
    if err != nil {
        return def
    }
    return d
}
