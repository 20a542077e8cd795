package gateway

import (
    "context"
    "fmt"
    "net/http"
    "net/url"

    "github.com/velora/salon-web/internal/model"
)

// ListServices fetches the service catalog. The optional category
// filters server-side; an empty string returns everything.
func (c *Client) ListServices(ctx context.Context, category string) ([]model.Service, error) {
    q := url.Values{}
    if category != "" {
        q.Set("category", category)
    }
    var out []model.Service
    if err := c.do(ctx, http.MethodGet, "/services", q, "", nil, &out); err != nil {
        return nil, err
    }
    return out, nil
}

// GetService fetches one service for the detail page.
func (c *Client) GetService(ctx context.Context, id uint64) (model.Service, error) {
    var out model.Service
    if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/services/%d", id), nil, "", nil, &out); err != nil {
        return model.Service{}, err
    }
    return out, nil
}

// ListProducts fetches the retail catalog.
func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
    var out []model.Product
    if err := c.do(ctx, http.MethodGet, "/products", nil, "", nil, &out); err != nil {
        return nil, err
    }
    return out, nil
}

// GetProduct fetches one product for the detail page.
func (c *Client) GetProduct(ctx context.Context, id uint64) (model.Product, error) {
    var out model.Product
    if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, "", nil, &out); err != nil {
        return model.Product{}, err
    }
    return out, nil
}
