package middleware

import (
    "bytes"
    "crypto/sha1"
    "encoding/json"
    "fmt"
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/velora/salon-web/internal/config"
)

// cachedResponse is the envelope stored in redis for each cache entry.
type cachedResponse struct {
    Status int         `json:"status"`
    Header http.Header `json:"header"`
    Body   []byte      `json:"body"`
}

// bodyRecorder tees the response body into a buffer, up to limit
// bytes, while forwarding everything to the client. Responses that
// overflow the limit are served normally but never cached.
type bodyRecorder struct {
    http.ResponseWriter
    status   int
    buf      bytes.Buffer
    written  int64
    limit    int64
    overflow bool
}

func (r *bodyRecorder) WriteHeader(code int) {
    r.status = code
    r.ResponseWriter.WriteHeader(code)
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
    r.written += int64(len(b))
    if r.written > r.limit {
        r.overflow = true
    } else {
        r.buf.Write(b)
    }
    return r.ResponseWriter.Write(b)
}

// ResponseCache caches successful GET responses of the routes it wraps
// in redis. It fronts the public catalog endpoints: those are read on
// every page view, change rarely and carry no per-user data. When rdb
// is nil or caching is disabled the middleware is a pass-through.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if c.Request().Method != http.MethodGet {
                return next(c)
            }
            key := cacheKey(cfg.Prefix, c)
            ctx := c.Request().Context()

            if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
                var cached cachedResponse
                if json.Unmarshal(raw, &cached) == nil {
                    h := c.Response().Header()
                    for k, vs := range cached.Header {
                        for _, v := range vs {
                            h.Add(k, v)
                        }
                    }
                    h.Set("X-Cache", "HIT")
                    return c.Blob(cached.Status, h.Get(echo.HeaderContentType), cached.Body)
                }
            }

            rec := &bodyRecorder{
                ResponseWriter: c.Response().Writer,
                status:         http.StatusOK,
                limit:          int64(cfg.MaxBodyBytes),
            }
            c.Response().Writer = rec
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }

            if rec.status == http.StatusOK && !rec.overflow {
                entry := cachedResponse{
                    Status: rec.status,
                    Header: pickCacheableHeaders(c.Response().Header()),
                    Body:   rec.buf.Bytes(),
                }
                if data, err := json.Marshal(entry); err == nil {
                    // Best effort: a failed write just means a miss next time.
                    _ = rdb.Set(ctx, key, data, cfg.TTL).Err()
                }
            }
            return nil
        }
    }
}

// cacheKey derives a stable redis key from the matched route and the
// raw query string.
func cacheKey(prefix string, c echo.Context) string {
    sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
    return fmt.Sprintf("%s:%x", prefix, sum)
}

// pickCacheableHeaders keeps only content headers; per-request headers
// like Set-Cookie must never be replayed to another client.
func pickCacheableHeaders(h http.Header) http.Header {
    out := http.Header{}
    for _, k := range []string{echo.HeaderContentType, "Cache-Control"} {
        if v := h.Get(k); v != "" {
            out.Set(k, v)
        }
    }
    return out
}
