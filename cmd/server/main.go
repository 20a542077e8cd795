package main // Entry point package

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/velora/salon-web/internal/cart"
    "github.com/velora/salon-web/internal/config"
    "github.com/velora/salon-web/internal/gateway"
    "github.com/velora/salon-web/internal/handler"
    "github.com/velora/salon-web/internal/queue"
    "github.com/velora/salon-web/internal/router"
    "github.com/velora/salon-web/internal/session"
    "github.com/velora/salon-web/internal/store"
)

func main() {
    _ = godotenv.Load() // .env is optional; real deployments set the environment directly
    cfg := config.Load()

    gw, err := gateway.New(gateway.Config{BaseURL: cfg.BackendURL, Timeout: cfg.BackendTimeout})
    if err != nil {
        log.Fatal(err)
    }

    // Redis backs snapshots, carts, caching and rate limiting. Without
    // it the service still runs: sessions and carts fall back to
    // process memory, caching and rate limiting switch off.
    rdb := config.NewRedisClient()
    var snapshots store.Provider
    var carts cart.Store
    if rdb != nil {
        snapshots = store.NewRedisProvider(rdb, cfg.CookieTTL)
        carts = cart.NewRedisStore(rdb, cfg.CookieTTL)
    } else {
        log.Println("redis unavailable; sessions and carts are in-memory until it returns")
        snapshots = store.NewMemoryProvider()
        carts = cart.NewMemoryStore()
    }

    mgr := session.NewManager(snapshots, gw)

    // Feed the staff dashboard from the backend's booking events.
    go queue.StartBookingConsumer(rdb)

    e := echo.New()
    e.HideBanner = true
    router.RegisterRoutes(e, router.Deps{
        Cfg:      cfg,
        CacheCfg: config.LoadCacheConfig(),
        RateCfg:  config.LoadRateLimitConfig(),
        Redis:    rdb,
        Manager:  mgr,
        Auth:     handler.NewAuthHandler(mgr, gw, carts, cfg),
        Catalog:  handler.NewCatalogHandler(gw),
        Booking:  handler.NewBookingHandler(gw),
        Cart:     handler.NewCartHandler(carts, gw),
        Orders:   handler.NewOrderHandler(gw),
        Staff:    handler.NewStaffHandler(gw, rdb),
    })

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s, backend=%s)", addr, cfg.Env, cfg.BackendURL)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
