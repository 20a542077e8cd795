package model

import "time"

// TimeSlot is one open appointment start offered by the backend
// availability endpoint for a given service and day.
//
// Fields:
//  StartsAt – slot start time (UTC).
//  EndsAt   – slot end time, start plus service duration.
//  StaffID  – employee who would take the appointment.
type TimeSlot struct {
    StartsAt time.Time `json:"starts_at"`
    EndsAt   time.Time `json:"ends_at"`
    StaffID  uint64    `json:"staff_id"`
}

// Reservation is a customer's booked appointment as the backend
// reports it in the history and confirmation responses.
//
// Fields:
//  ID          – reservation identifier.
//  ServiceID   – booked service.
//  ServiceName – denormalized service name for display.
//  StaffID     – assigned employee.
//  StartsAt    – appointment start (UTC).
//  Status      – PENDING, CONFIRMED or CANCELLED.
//  PriceCents  – price charged, in cents.
type Reservation struct {
    ID          uint64    `json:"id"`
    ServiceID   uint64    `json:"service_id"`
    ServiceName string    `json:"service_name"`
    StaffID     uint64    `json:"staff_id"`
    StartsAt    time.Time `json:"starts_at"`
    Status      string    `json:"status"`
    PriceCents  uint32    `json:"price_cents"`
}

// Appointment is the staff-side view of a reservation: the dashboard
// shows who is coming in, for what and when.
//
// Fields:
//  ID           – reservation identifier.
//  CustomerName – display name of the booking customer.
//  ServiceName  – booked service.
//  StartsAt     – appointment start (UTC).
//  Status       – PENDING, CONFIRMED, DONE or CANCELLED.
type Appointment struct {
    ID           uint64    `json:"id"`
    CustomerName string    `json:"customer_name"`
    ServiceName  string    `json:"service_name"`
    StartsAt     time.Time `json:"starts_at"`
    Status       string    `json:"status"`
}
