package middleware

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/velora/salon-web/internal/config"
)

// CredentialRateLimit bounds attempts against the credential endpoints
// (login, register, forgot-password) with a fixed window per client IP
// in redis:
// INCR the window key, set its expiry on first hit, reject once the
// count passes the limit. Coarser than a token bucket but plenty to
// blunt dictionary runs against the login form. Pass-through when rdb
// is nil or limiting is disabled.
func CredentialRateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            key := cfg.Prefix + ":" + c.Path() + ":" + c.RealIP()
            ctx := c.Request().Context()

            count, err := rdb.Incr(ctx, key).Result()
            if err != nil {
                // Redis hiccups must not lock users out of login.
                return next(c)
            }
            if count == 1 {
                _ = rdb.Expire(ctx, key, cfg.Window).Err()
            }
            if count > int64(cfg.Limit) {
                retry := cfg.Window.Seconds()
                c.Response().Header().Set("Retry-After", strconv.Itoa(int(retry)))
                return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "too many attempts, slow down"})
            }
            return next(c)
        }
    }
}
