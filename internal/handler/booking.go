package handler

import (
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/velora/salon-web/internal/gateway"
    "github.com/velora/salon-web/internal/model"
)

// BookingHandler drives the booking wizard: pick a service, pick a day
// and slot, confirm. Slot availability comes from the backend; the
// only local logic is dropping slots that have already started by the
// time the page renders.
type BookingHandler struct {
    Gateway *gateway.Client
    Now     func() time.Time // injectable clock for tests
}

func NewBookingHandler(gw *gateway.Client) *BookingHandler {
    return &BookingHandler{Gateway: gw, Now: time.Now}
}

// Availability returns the open slots for ?service_id= on ?date=
// (YYYY-MM-DD), with slots already in the past filtered out.
func (h *BookingHandler) Availability(c echo.Context) error {
    serviceID, err := strconv.ParseUint(c.QueryParam("service_id"), 10, 64)
    if err != nil || serviceID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "service_id is required"})
    }
    date := c.QueryParam("date")
    if _, err := time.Parse("2006-01-02", date); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
    }

    slots, err := h.Gateway.Availability(c.Request().Context(), serviceID, date)
    if err != nil {
        return respondGatewayError(c, err)
    }

    now := h.Now()
    open := make([]model.TimeSlot, 0, len(slots))
    for _, s := range slots {
        if s.StartsAt.After(now) {
            open = append(open, s)
        }
    }
    return c.JSON(http.StatusOK, open)
}

// CreateReservation books a slot for the signed-in customer.
func (h *BookingHandler) CreateReservation(c echo.Context) error {
    var req struct {
        ServiceID uint64 `json:"service_id"`
        StaffID   uint64 `json:"staff_id"`
        StartsAt  string `json:"starts_at"`
    }
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.ServiceID == 0 || req.StartsAt == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "service_id and starts_at are required"})
    }
    if _, err := time.Parse(time.RFC3339, req.StartsAt); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "starts_at must be RFC 3339"})
    }

    reservation, err := h.Gateway.CreateReservation(c.Request().Context(), sessionToken(c), gateway.ReservationRequest{
        ServiceID: req.ServiceID,
        StaffID:   req.StaffID,
        StartsAt:  req.StartsAt,
    })
    if err != nil {
        return respondGatewayError(c, err)
    }
    return c.JSON(http.StatusCreated, reservation)
}

// ListReservations returns the customer's booking history.
func (h *BookingHandler) ListReservations(c echo.Context) error {
    reservations, err := h.Gateway.ListReservations(c.Request().Context(), sessionToken(c))
    if err != nil {
        return respondGatewayError(c, err)
    }
    return c.JSON(http.StatusOK, reservations)
}

// CancelReservation cancels one of the customer's reservations.
func (h *BookingHandler) CancelReservation(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    if err := h.Gateway.CancelReservation(c.Request().Context(), sessionToken(c), id); err != nil {
        return respondGatewayError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
