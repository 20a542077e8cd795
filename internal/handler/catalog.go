package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/velora/salon-web/internal/gateway"
)

// CatalogHandler serves the public browse pages: salon services and
// retail products. No authentication is involved; responses sit behind
// the redis response cache.
type CatalogHandler struct {
    Gateway *gateway.Client
}

func NewCatalogHandler(gw *gateway.Client) *CatalogHandler {
    return &CatalogHandler{Gateway: gw}
}

// ListServices returns the service catalog, optionally filtered by
// ?category=.
func (h *CatalogHandler) ListServices(c echo.Context) error {
    services, err := h.Gateway.ListServices(c.Request().Context(), c.QueryParam("category"))
    if err != nil {
        return respondGatewayError(c, err)
    }
    return c.JSON(http.StatusOK, services)
}

// GetService returns one service for the detail page.
func (h *CatalogHandler) GetService(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service id"})
    }
    svc, err := h.Gateway.GetService(c.Request().Context(), id)
    if err != nil {
        return respondGatewayError(c, err)
    }
    return c.JSON(http.StatusOK, svc)
}

// ListProducts returns the retail catalog.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
    products, err := h.Gateway.ListProducts(c.Request().Context())
    if err != nil {
        return respondGatewayError(c, err)
    }
    return c.JSON(http.StatusOK, products)
}

// GetProduct returns one product for the detail page.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
    }
    p, err := h.Gateway.GetProduct(c.Request().Context(), id)
    if err != nil {
        return respondGatewayError(c, err)
    }
    return c.JSON(http.StatusOK, p)
}
