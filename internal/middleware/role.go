package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/velora/salon-web/internal/model"
)

// RequireAuth rejects requests whose session is not authenticated.
// It assumes the Session middleware already ran.
func RequireAuth() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            m := CurrentSession(c)
            if m == nil || !m.State().IsAuthenticated {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
            }
            return next(c)
        }
    }
}

// RequireRole enforces that the session user carries one of the given
// roles. Missing or anonymous sessions read as roleless and are
// rejected with 403 rather than panicking.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            m := CurrentSession(c)
            if m == nil {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            for _, r := range roles {
                if m.HasRole(r) {
                    return next(c)
                }
            }
            return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
        }
    }
}
