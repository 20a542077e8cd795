// Package gateway is the HTTP client for the backend platform API. All
// business logic (pricing, availability, inventory, payments) lives
// behind that API; this package only shapes requests, attaches the
// bearer token when one is supplied and turns non-2xx responses into
// structured *APIError values.
package gateway

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "net/url"
    "strings"
    "time"
)

// Client talks to the backend platform API.
type Client struct {
    baseURL    string
    httpClient *http.Client
}

// Config holds client construction parameters. Timeout applies to every
// call; the session layer above performs no cancellation of its own.
type Config struct {
    BaseURL    string
    Timeout    time.Duration
    HTTPClient *http.Client // optional, mainly for tests
}

// New validates the config and returns a ready client.
func New(cfg Config) (*Client, error) {
    if cfg.BaseURL == "" {
        return nil, fmt.Errorf("gateway: BaseURL is required")
    }
    hc := cfg.HTTPClient
    if hc == nil {
        timeout := cfg.Timeout
        if timeout <= 0 {
            timeout = 10 * time.Second
        }
        hc = &http.Client{Timeout: timeout}
    }
    return &Client{
        baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
        httpClient: hc,
    }, nil
}

// do performs one round-trip. A non-empty token is attached as a bearer
// credential. body (if non-nil) is JSON-encoded; out (if non-nil)
// receives the decoded 2xx response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
    u := c.baseURL + path
    if len(query) > 0 {
        u += "?" + query.Encode()
    }

    var reader io.Reader
    if body != nil {
        data, err := json.Marshal(body)
        if err != nil {
            return fmt.Errorf("gateway: encode request: %w", err)
        }
        reader = bytes.NewReader(data)
    }

    req, err := http.NewRequestWithContext(ctx, method, u, reader)
    if err != nil {
        return fmt.Errorf("gateway: build request: %w", err)
    }
    if body != nil {
        req.Header.Set("Content-Type", "application/json")
    }
    req.Header.Set("Accept", "application/json")
    if token != "" {
        req.Header.Set("Authorization", "Bearer "+token)
    }

    resp, err := c.httpClient.Do(req)
    if err != nil {
        return fmt.Errorf("gateway: %s %s: %w", method, path, err)
    }
    defer resp.Body.Close()

    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return decodeError(resp)
    }
    if out == nil {
        // Drain so the connection can be reused.
        _, _ = io.Copy(io.Discard, resp.Body)
        return nil
    }
    if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
        return fmt.Errorf("gateway: decode response: %w", err)
    }
    return nil
}

// decodeError turns a non-2xx response into an *APIError. The backend
// reports failures as {"message": "..."}; when the body is not in that
// shape a generic message keyed to the status is used instead.
func decodeError(resp *http.Response) error {
    apiErr := &APIError{Status: resp.StatusCode}
    var payload struct {
        Message string `json:"message"`
        Error   string `json:"error"`
    }
    data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
    if err := json.Unmarshal(data, &payload); err == nil {
        if payload.Message != "" {
            apiErr.Message = payload.Message
        } else if payload.Error != "" {
            apiErr.Message = payload.Error
        }
    }
    if apiErr.Message == "" {
        apiErr.Message = http.StatusText(resp.StatusCode)
    }
    return apiErr
}
