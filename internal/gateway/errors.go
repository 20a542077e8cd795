package gateway

import (
    "errors"
    "fmt"
)

// APIError is a structured failure from the backend platform API. The
// status code is preserved so callers can branch on it; 401 in
// particular distinguishes rejected credentials and stale tokens from
// transport problems.
type APIError struct {
    Status  int    // HTTP status returned by the backend
    Message string // human-readable message from the response body
}

func (e *APIError) Error() string {
    return fmt.Sprintf("backend api: %d %s", e.Status, e.Message)
}

// StatusOf extracts the backend status code from err. It returns 0
// when err is not an APIError (e.g. a transport failure).
func StatusOf(err error) int {
    var apiErr *APIError
    if errors.As(err, &apiErr) {
        return apiErr.Status
    }
    return 0
}
