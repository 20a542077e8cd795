// Package queue contains the background consumer that listens to the
// backend's booking.confirmed queue and feeds the staff dashboard's
// notification list in redis.
package queue

import "time"

// AppointmentBookedEvent is published by the backend whenever a
// reservation is confirmed. The frontend consumes it to show staff a
// live feed of incoming bookings without polling the backend.
type AppointmentBookedEvent struct {
    ReservationID uint64    `json:"reservation_id"`
    CustomerName  string    `json:"customer_name"`
    ServiceName   string    `json:"service_name"`
    StartsAt      time.Time `json:"starts_at"`
    BookedAt      time.Time `json:"booked_at"`
}
