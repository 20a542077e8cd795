package gateway

import (
    "context"
    "fmt"
    "net/http"
    "net/url"

    "github.com/velora/salon-web/internal/model"
)

// ListAppointments returns the salon's appointments for one day
// (YYYY-MM-DD). Requires a staff or admin token.
func (c *Client) ListAppointments(ctx context.Context, token, date string) ([]model.Appointment, error) {
    q := url.Values{}
    q.Set("date", date)
    var out []model.Appointment
    if err := c.do(ctx, http.MethodGet, "/staff/appointments", q, token, nil, &out); err != nil {
        return nil, err
    }
    return out, nil
}

// UpdateAppointmentStatus moves an appointment through its lifecycle
// (e.g. PENDING -> CONFIRMED -> DONE). Requires a staff or admin token.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, token string, id uint64, status string) (model.Appointment, error) {
    body := map[string]string{"status": status}
    var out model.Appointment
    if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/staff/appointments/%d", id), nil, token, body, &out); err != nil {
        return model.Appointment{}, err
    }
    return out, nil
}
