package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/velora/salon-web/internal/cart"
    "github.com/velora/salon-web/internal/gateway"
    "github.com/velora/salon-web/internal/middleware"
)

// CartHandler manages the per-session shopping cart and checkout. The
// cart lives in the cart store keyed by session ID; browsing the cart
// works anonymously, checkout requires a signed-in customer. Prices on
// the cart page are display values; the backend recomputes them when
// the order is placed.
type CartHandler struct {
    Carts   cart.Store
    Gateway *gateway.Client
}

func NewCartHandler(carts cart.Store, gw *gateway.Client) *CartHandler {
    return &CartHandler{Carts: carts, Gateway: gw}
}

type cartResp struct {
    Items         []cart.Item `json:"items"`
    SubtotalCents uint64      `json:"subtotal_cents"`
}

func (h *CartHandler) respond(c echo.Context, ct cart.Cart) error {
    items := ct.Items
    if items == nil {
        items = []cart.Item{}
    }
    return c.JSON(http.StatusOK, cartResp{Items: items, SubtotalCents: ct.SubtotalCents()})
}

// GetCart returns the session's cart contents and display subtotal.
func (h *CartHandler) GetCart(c echo.Context) error {
    ct, err := h.Carts.Get(c.Request().Context(), middleware.SessionID(c))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cart unavailable"})
    }
    return h.respond(c, ct)
}

// AddItem puts a product into the cart. The product is looked up on
// the backend so the cart line carries the current name and price, and
// out-of-stock items are rejected up front.
func (h *CartHandler) AddItem(c echo.Context) error {
    var req struct {
        ProductID uint64 `json:"product_id"`
        Quantity  int    `json:"quantity"`
    }
    if err := c.Bind(&req); err != nil || req.ProductID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_id is required"})
    }

    ctx := c.Request().Context()
    product, err := h.Gateway.GetProduct(ctx, req.ProductID)
    if err != nil {
        return respondGatewayError(c, err)
    }
    if !product.InStock {
        return c.JSON(http.StatusConflict, echo.Map{"error": "product is out of stock"})
    }

    sid := middleware.SessionID(c)
    ct, err := h.Carts.Get(ctx, sid)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cart unavailable"})
    }
    ct.Add(product, req.Quantity)
    if err := h.Carts.Save(ctx, sid, ct); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cart could not be saved"})
    }
    return h.respond(c, ct)
}

// RemoveItem drops a product line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
    productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || productID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
    }

    ctx := c.Request().Context()
    sid := middleware.SessionID(c)
    ct, err := h.Carts.Get(ctx, sid)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cart unavailable"})
    }
    ct.Remove(productID)
    if err := h.Carts.Save(ctx, sid, ct); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cart could not be saved"})
    }
    return h.respond(c, ct)
}

// Checkout turns the cart into a backend order and clears the cart on
// success. Requires a signed-in customer (enforced by route
// middleware).
func (h *CartHandler) Checkout(c echo.Context) error {
    ctx := c.Request().Context()
    sid := middleware.SessionID(c)
    ct, err := h.Carts.Get(ctx, sid)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cart unavailable"})
    }
    if ct.Empty() {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "cart is empty"})
    }

    lines := make([]gateway.OrderLine, 0, len(ct.Items))
    for _, it := range ct.Items {
        lines = append(lines, gateway.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
    }
    order, err := h.Gateway.CreateOrder(ctx, sessionToken(c), gateway.OrderRequest{Items: lines})
    if err != nil {
        return respondGatewayError(c, err)
    }
    if err := h.Carts.Clear(ctx, sid); err != nil {
        // The order exists either way; an uncleared cart is only a
        // cosmetic nuisance on the next page view.
        c.Logger().Warnf("clearing cart after checkout: %v", err)
    }
    return c.JSON(http.StatusCreated, order)
}
