package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/velora/salon-web/internal/gateway"
)

// OrderHandler serves the customer's order history pages.
type OrderHandler struct {
    Gateway *gateway.Client
}

func NewOrderHandler(gw *gateway.Client) *OrderHandler {
    return &OrderHandler{Gateway: gw}
}

// ListOrders returns the signed-in customer's orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
    orders, err := h.Gateway.ListOrders(c.Request().Context(), sessionToken(c))
    if err != nil {
        return respondGatewayError(c, err)
    }
    return c.JSON(http.StatusOK, orders)
}

// GetOrder returns one order for the detail page.
func (h *OrderHandler) GetOrder(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
    }
    order, err := h.Gateway.GetOrder(c.Request().Context(), sessionToken(c), id)
    if err != nil {
        return respondGatewayError(c, err)
    }
    return c.JSON(http.StatusOK, order)
}
