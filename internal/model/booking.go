package model

import "time"

// Booking records one reserved time slot on one turf for one user.
// The (TurfID, Date, Time) triple is unique: the database enforces
// it with a composite unique key so two concurrent inserts for the
// same slot cannot both succeed.  Bookings are only ever inserted
// or deleted, never updated.
//
// Fields:
//  ID         – primary key assigned by the store on insert.
//  Reference  – opaque reference shown on the confirmation ticket.
//  TurfID     – turf being booked, references turfs.id.
//  UserEmail  – booking owner's email; the tenant key, not a foreign key.
//  Date       – calendar date of the booking in YYYY-MM-DD form.
//  Time       – one slot label drawn from the turf's catalog, e.g. "09:00".
//  AmountPaid – display string recorded at creation, not a validated amount.
//  CreatedAt  – creation timestamp, the only lifecycle event recorded.
type Booking struct {
    ID         uint64    `json:"id"`          // bookings.id
    Reference  string    `json:"reference"`   // bookings.reference
    TurfID     uint64    `json:"turf_id"`     // bookings.turf_id
    UserEmail  string    `json:"user_email"`  // bookings.user_email
    Date       string    `json:"date"`        // bookings.booking_date
    Time       string    `json:"time"`        // bookings.booking_time
    AmountPaid string    `json:"amount_paid"` // bookings.amount_paid
    CreatedAt  time.Time `json:"created_at"`  // bookings.created_at
}

// When returns the instant the booking starts, composed from Date and
// Time in UTC.  ok is false when either field cannot be parsed.
func (b Booking) When() (time.Time, bool) {
    t, err := time.Parse("2006-01-02 15:04", b.Date+" "+b.Time)
    if err != nil {
        return time.Time{}, false
    }
    return t.UTC(), true
}
