package router // package router defines how HTTP routes are registered for the frontend

import (
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/velora/salon-web/internal/config"
    "github.com/velora/salon-web/internal/handler"
    "github.com/velora/salon-web/internal/middleware"
    "github.com/velora/salon-web/internal/model"
    "github.com/velora/salon-web/internal/session"
)

// Deps bundles everything the route table needs. Handlers are built in
// main and passed in; the router only decides which middleware guards
// which group.
type Deps struct {
    Cfg      config.Config
    CacheCfg config.CacheConfig
    RateCfg  config.RateLimitConfig
    Redis    *redis.Client
    Manager  *session.Manager

    Auth    *handler.AuthHandler
    Catalog *handler.CatalogHandler
    Booking *handler.BookingHandler
    Cart    *handler.CartHandler
    Orders  *handler.OrderHandler
    Staff   *handler.StaffHandler
}

// RegisterRoutes wires the full route table. The session middleware
// runs on every group that can branch on authentication, which keeps
// the bootstrap-before-first-branch ordering guarantee in one place;
// purely public groups (catalog, health) skip it.
func RegisterRoutes(e *echo.Echo, d Deps) {
    sess := middleware.Session(d.Manager, d.Cfg)
    limit := middleware.CredentialRateLimit(d.RateCfg, d.Redis)
    cached := middleware.ResponseCache(d.CacheCfg, d.Redis)

    // Health check for load balancers; no session, no cookie.
    e.GET("/healthz", handler.Health)

    // Authentication pages.
    auth := e.Group("/v1/auth", sess)
    auth.POST("/login", d.Auth.Login, limit)
    auth.POST("/register", d.Auth.Register, limit)
    auth.POST("/logout", d.Auth.Logout)
    auth.POST("/verify-email", d.Auth.VerifyEmail)
    auth.POST("/resend-verification", d.Auth.ResendVerification)
    auth.POST("/forgot-password", d.Auth.ForgotPassword, limit)

    // Account page.
    me := e.Group("/v1/me", sess, middleware.RequireAuth())
    me.GET("", d.Auth.Me)
    me.PATCH("", d.Auth.UpdateMe)

    // Public catalog browse, behind the response cache.
    catalog := e.Group("/v1", cached)
    catalog.GET("/services", d.Catalog.ListServices)
    catalog.GET("/services/:id", d.Catalog.GetService)
    catalog.GET("/products", d.Catalog.ListProducts)
    catalog.GET("/products/:id", d.Catalog.GetProduct)

    // Booking wizard: availability is public so guests can browse
    // slots before being asked to sign in; booking itself is
    // customer-only.
    e.GET("/v1/booking/availability", d.Booking.Availability)
    reservations := e.Group("/v1/booking/reservations",
        sess, middleware.RequireAuth(), middleware.RequireRole(model.RoleCustomer))
    reservations.POST("", d.Booking.CreateReservation)
    reservations.GET("", d.Booking.ListReservations)
    reservations.DELETE("/:id", d.Booking.CancelReservation)

    // Cart works anonymously; checkout needs a signed-in customer.
    cart := e.Group("/v1/cart", sess)
    cart.GET("", d.Cart.GetCart)
    cart.POST("/items", d.Cart.AddItem)
    cart.DELETE("/items/:id", d.Cart.RemoveItem)
    cart.POST("/checkout", d.Cart.Checkout,
        middleware.RequireAuth(), middleware.RequireRole(model.RoleCustomer))

    // Order history.
    orders := e.Group("/v1/orders",
        sess, middleware.RequireAuth(), middleware.RequireRole(model.RoleCustomer))
    orders.GET("", d.Orders.ListOrders)
    orders.GET("/:id", d.Orders.GetOrder)

    // Staff dashboard; admins see it too.
    staff := e.Group("/v1/staff",
        sess, middleware.RequireAuth(), middleware.RequireRole(model.RoleStaff, model.RoleAdmin))
    staff.GET("/appointments", d.Staff.ListAppointments)
    staff.PATCH("/appointments/:id/status", d.Staff.UpdateAppointmentStatus)
    staff.GET("/notifications", d.Staff.Notifications)
}
