package handler_test

import (
    "encoding/json"
    "net/http"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/velora/salon-web/internal/model"
)

func TestAvailabilityFiltersPastSlots(t *testing.T) {
    e := newApp(t, newStubBackend(t))
    today := time.Now().UTC().Format("2006-01-02")

    rec := doJSON(e, http.MethodGet, "/v1/booking/availability?service_id=1&date="+today, "", nil)
    require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

    var slots []model.TimeSlot
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slots))
    require.Len(t, slots, 1, "slots that already started must be dropped")
    assert.True(t, slots[0].StartsAt.After(time.Now().UTC()))
}

func TestAvailabilityValidatesInput(t *testing.T) {
    e := newApp(t, newStubBackend(t))

    rec := doJSON(e, http.MethodGet, "/v1/booking/availability?date=2026-09-01", "", nil)
    assert.Equal(t, http.StatusBadRequest, rec.Code)

    rec = doJSON(e, http.MethodGet, "/v1/booking/availability?service_id=1&date=tomorrow", "", nil)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}
