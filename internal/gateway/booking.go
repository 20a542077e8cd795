package gateway

import (
    "context"
    "fmt"
    "net/http"
    "net/url"
    "strconv"

    "github.com/velora/salon-web/internal/model"
)

// ReservationRequest asks the backend to book one slot for the
// authenticated customer.
type ReservationRequest struct {
    ServiceID uint64 `json:"service_id"`
    StaffID   uint64 `json:"staff_id"`
    StartsAt  string `json:"starts_at"` // RFC 3339
}

// Availability lists the open slots for a service on a given day. date
// is formatted YYYY-MM-DD; availability is public so no token is sent.
func (c *Client) Availability(ctx context.Context, serviceID uint64, date string) ([]model.TimeSlot, error) {
    q := url.Values{}
    q.Set("service_id", strconv.FormatUint(serviceID, 10))
    q.Set("date", date)
    var out []model.TimeSlot
    if err := c.do(ctx, http.MethodGet, "/availability", q, "", nil, &out); err != nil {
        return nil, err
    }
    return out, nil
}

// CreateReservation books a slot on behalf of the token's owner.
func (c *Client) CreateReservation(ctx context.Context, token string, req ReservationRequest) (model.Reservation, error) {
    var out model.Reservation
    if err := c.do(ctx, http.MethodPost, "/reservations", nil, token, req, &out); err != nil {
        return model.Reservation{}, err
    }
    return out, nil
}

// ListReservations returns the token owner's booking history.
func (c *Client) ListReservations(ctx context.Context, token string) ([]model.Reservation, error) {
    var out []model.Reservation
    if err := c.do(ctx, http.MethodGet, "/reservations", nil, token, nil, &out); err != nil {
        return nil, err
    }
    return out, nil
}

// CancelReservation cancels one of the token owner's reservations.
func (c *Client) CancelReservation(ctx context.Context, token string, id uint64) error {
    return c.do(ctx, http.MethodDelete, fmt.Sprintf("/reservations/%d", id), nil, token, nil, nil)
}
