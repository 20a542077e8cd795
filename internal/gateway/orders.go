package gateway

import (
    "context"
    "fmt"
    "net/http"

    "github.com/velora/salon-web/internal/model"
)

// OrderLine is one cart line submitted at checkout. The backend
// recomputes prices from its own catalog; quantities are what matter.
type OrderLine struct {
    ProductID uint64 `json:"product_id"`
    Quantity  int    `json:"quantity"`
}

// OrderRequest is the checkout payload.
type OrderRequest struct {
    Items []OrderLine `json:"items"`
}

// CreateOrder places an order for the token's owner.
func (c *Client) CreateOrder(ctx context.Context, token string, req OrderRequest) (model.Order, error) {
    var out model.Order
    if err := c.do(ctx, http.MethodPost, "/orders", nil, token, req, &out); err != nil {
        return model.Order{}, err
    }
    return out, nil
}

// ListOrders returns the token owner's order history.
func (c *Client) ListOrders(ctx context.Context, token string) ([]model.Order, error) {
    var out []model.Order
    if err := c.do(ctx, http.MethodGet, "/orders", nil, token, nil, &out); err != nil {
        return nil, err
    }
    return out, nil
}

// GetOrder fetches one order for the detail page.
func (c *Client) GetOrder(ctx context.Context, token string, id uint64) (model.Order, error) {
    var out model.Order
    if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, token, nil, &out); err != nil {
        return model.Order{}, err
    }
    return out, nil
}
