package config

import (
    "time"
)

// RateLimitConfig bounds how often a single client may hit the
// credential endpoints (login, register, forgot-password). A fixed window per
// client IP is enough to blunt brute-force attempts; the backend has
// its own, stricter accounting.
type RateLimitConfig struct {
    Enabled bool
    Limit   int           // attempts allowed per window
    Window  time.Duration // window length
    Prefix  string        // redis key namespace
}

// LoadRateLimitConfig reads rate limit settings from the environment.
func LoadRateLimitConfig() RateLimitConfig {
    cfg := RateLimitConfig{
        Enabled: getenv("RATE_LIMIT_ENABLED", "true") == "true",
        Limit:   intDefault("RATE_LIMIT_ATTEMPTS", 10),
        Window:  durDefault("RATE_LIMIT_WINDOW", time.Minute),
        Prefix:  getenv("RATE_LIMIT_PREFIX", "rl"),
    }
    if cfg.Limit < 1 {
        cfg.Limit = 1
    }
    if cfg.Window <= 0 {
        cfg.Window = time.Minute
    }
    return cfg
}
