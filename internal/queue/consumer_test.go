package queue

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestHandleDeliveryRejectsMalformedBody(t *testing.T) {
    err := handleDelivery([]byte("{not json"), nil)
    assert.Error(t, err, "malformed messages must be rejected so they are not requeued forever")
}

func TestHandleDeliveryWithoutRedisOnlyLogs(t *testing.T) {
    body := []byte(`{"reservation_id":12,"customer_name":"Cleo Mahler","service_name":"Balayage","starts_at":"2026-09-02T10:00:00Z","booked_at":"2026-09-01T09:30:00Z"}`)
    require.NoError(t, handleDelivery(body, nil), "redis being down must not poison the queue")
}

func TestRecentNotificationsWithoutRedis(t *testing.T) {
    events, err := RecentNotifications(context.Background(), nil, 10)
    require.NoError(t, err)
    assert.Empty(t, events)
}
