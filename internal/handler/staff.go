package handler

import (
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/velora/salon-web/internal/gateway"
    "github.com/velora/salon-web/internal/queue"
)

// StaffHandler serves the staff dashboard: the day's appointment list,
// status updates and the live booking notification feed. Routes are
// gated to STAFF and ADMIN by middleware.
type StaffHandler struct {
    Gateway *gateway.Client
    Redis   *redis.Client // nil when redis is unavailable; the feed is then empty
}

func NewStaffHandler(gw *gateway.Client, rdb *redis.Client) *StaffHandler {
    return &StaffHandler{Gateway: gw, Redis: rdb}
}

// appointmentStatuses a staff member may set from the dashboard.
var appointmentStatuses = map[string]bool{
    "CONFIRMED": true,
    "DONE":      true,
    "CANCELLED": true,
}

// ListAppointments returns the salon's appointments for ?date=
// (YYYY-MM-DD), defaulting to today.
func (h *StaffHandler) ListAppointments(c echo.Context) error {
    date := c.QueryParam("date")
    if date == "" {
        date = time.Now().UTC().Format("2006-01-02")
    } else if _, err := time.Parse("2006-01-02", date); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
    }

    appointments, err := h.Gateway.ListAppointments(c.Request().Context(), sessionToken(c), date)
    if err != nil {
        return respondGatewayError(c, err)
    }
    return c.JSON(http.StatusOK, appointments)
}

// UpdateAppointmentStatus moves an appointment through its lifecycle.
func (h *StaffHandler) UpdateAppointmentStatus(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid appointment id"})
    }
    var req struct {
        Status string `json:"status"`
    }
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    status := strings.ToUpper(strings.TrimSpace(req.Status))
    if !appointmentStatuses[status] {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be CONFIRMED, DONE or CANCELLED"})
    }

    appointment, err := h.Gateway.UpdateAppointmentStatus(c.Request().Context(), sessionToken(c), id, status)
    if err != nil {
        return respondGatewayError(c, err)
    }
    return c.JSON(http.StatusOK, appointment)
}

// Notifications returns the newest booking.confirmed events, newest
// first, for the dashboard's live feed.
func (h *StaffHandler) Notifications(c echo.Context) error {
    limit := 20
    if s := c.QueryParam("limit"); s != "" {
        if n, err := strconv.Atoi(s); err == nil && n > 0 {
            limit = n
        }
    }
    events, err := queue.RecentNotifications(c.Request().Context(), h.Redis, limit)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "notifications unavailable"})
    }
    if events == nil {
        events = []queue.AppointmentBookedEvent{}
    }
    return c.JSON(http.StatusOK, events)
}
