// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios: a slot
// conflict must never be reported the same way as a backend fault,
// because callers react differently (pick another slot vs. retry).
package repository

import (
    "errors"

    "github.com/go-sql-driver/mysql"
)

// ErrTurfNotFound is returned when a turf lookup matches no row.
// Handlers should translate this into an HTTP 404 response.
var ErrTurfNotFound = errors.New("turf not found")

// ErrBookingNotFound is returned when a booking lookup matches no row.
var ErrBookingNotFound = errors.New("booking not found")

// ErrSlotTaken is returned when a booking insert collides with an
// existing booking for the same (turf, date, time) triple. The database
// enforces the uniqueness with a composite unique key, so this surfaces
// even when two writers race past their pre-insert checks. Handlers
// should translate this into an HTTP 409 response.
var ErrSlotTaken = errors.New("slot already booked")

// ErrOwnerExists is returned when a turf insert collides with the
// unique owner-email key: each account manages at most one turf.
// Handlers should translate this into an HTTP 409 response.
var ErrOwnerExists = errors.New("owner already has a turf")

// ErrForbidden is returned when the caller attempts an operation on a
// resource owned by someone else. Handlers should translate this into
// an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (error number 1062), the signal that a unique key rejected an insert.
func isDuplicateKey(err error) bool {
    var me *mysql.MySQLError
    return errors.As(err, &me) && me.Number == 1062
}
