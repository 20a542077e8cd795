package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/velora/salon-web/internal/gateway"
    "github.com/velora/salon-web/internal/middleware"
    "github.com/velora/salon-web/internal/session"
)

// currentSession fetches the request's session machine. The session
// middleware runs on every route, so a nil here is a wiring bug and is
// answered with a 500 rather than a panic.
func currentSession(c echo.Context) (*session.Machine, bool) {
    m := middleware.CurrentSession(c)
    return m, m != nil
}

// sessionToken returns the bearer token for the current session, empty
// when anonymous.
func sessionToken(c echo.Context) string {
    if m, ok := currentSession(c); ok {
        return m.State().Token
    }
    return ""
}

// respondGatewayError translates a backend failure into the frontend's
// response. Backend statuses pass through so the browser sees what the
// platform decided. A 401 on an authenticated call means the stored
// token went stale since bootstrap trusted it; the session is forcibly
// logged out so the next page load lands on the sign-in screen.
func respondGatewayError(c echo.Context, err error) error {
    var apiErr *gateway.APIError
    if errors.As(err, &apiErr) {
        if apiErr.Status == http.StatusUnauthorized {
            if m, ok := currentSession(c); ok && m.State().IsAuthenticated {
                m.Logout(c.Request().Context())
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired, please sign in again"})
            }
        }
        return c.JSON(apiErr.Status, echo.Map{"error": apiErr.Message})
    }
    return c.JSON(http.StatusBadGateway, echo.Map{"error": "the booking service is currently unreachable"})
}
