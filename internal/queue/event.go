// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking is successfully
// persisted. It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type BookingCreatedEvent struct {
    BookingID  uint64 `json:"booking_id"`
    Reference  string `json:"reference"`
    TurfID     uint64 `json:"turf_id"`
    TurfName   string `json:"turf_name"`
    UserEmail  string `json:"user_email"`
    Date       string `json:"date"`
    Time       string `json:"time"`
    AmountPaid string `json:"amount_paid"`
    CreatedAt  string `json:"created_at"`
}
