package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/turfer/turfer-api/internal/model"
)

// BookingRepo provides persistence for bookings. Dates are stored as
// DATE columns and slot labels as plain strings; the composite unique
// key uq_bookings_slot (turf_id, booking_date, booking_time) is the
// authority on conflicts. The repository re-checks availability inside
// the insert transaction to give a friendly error on the common case,
// but correctness never depends on that check: a racing insert that
// slips past it is rejected by the key and mapped to ErrSlotTaken.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, reference, turf_id, user_email,
                        DATE_FORMAT(booking_date, '%Y-%m-%d'), booking_time, amount_paid, created_at`

func scanBooking(row interface{ Scan(...any) error }) (*model.Booking, error) {
    var b model.Booking
    if err := row.Scan(
        &b.ID, &b.Reference, &b.TurfID, &b.UserEmail,
        &b.Date, &b.Time, &b.AmountPaid, &b.CreatedAt,
    ); err != nil {
        return nil, err
    }
    return &b, nil
}

// BookedTimes returns the slot labels already booked for the turf on
// the given calendar date. The read is keyed by (turf id, exact date);
// a storage failure propagates as an error and is never collapsed into
// an empty result, because "lookup failed" and "no bookings" must stay
// distinguishable to callers computing availability.
func (r *BookingRepo) BookedTimes(ctx context.Context, turfID uint64, date string) ([]string, error) {
    const q = `SELECT booking_time FROM bookings WHERE turf_id = ? AND booking_date = ?`
    rows, err := r.db.QueryContext(ctx, q, turfID, date)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]string, 0)
    for rows.Next() {
        var t string
        if err := rows.Scan(&t); err != nil {
            return nil, err
        }
        out = append(out, t)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// Create persists a new booking. It runs in a transaction: an existence
// check narrows the race window with a fast, friendly conflict answer,
// then the insert either succeeds or is rejected atomically by the
// unique key when a concurrent writer got there first. Either conflict
// path returns ErrSlotTaken. On success the booking's ID and CreatedAt
// are populated; on any failure nothing is persisted.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    const check = `SELECT COUNT(*) FROM bookings WHERE turf_id = ? AND booking_date = ? AND booking_time = ?`
    var n int
    if err := tx.QueryRowContext(ctx, check, b.TurfID, b.Date, b.Time).Scan(&n); err != nil {
        return err
    }
    if n > 0 {
        return ErrSlotTaken
    }

    const ins = `INSERT INTO bookings (reference, turf_id, user_email, booking_date, booking_time, amount_paid)
                 VALUES (?, ?, ?, ?, ?, ?)`
    res, err := tx.ExecContext(ctx, ins, b.Reference, b.TurfID, b.UserEmail, b.Date, b.Time, b.AmountPaid)
    if err != nil {
        if isDuplicateKey(err) {
            return ErrSlotTaken
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)

    const sel = `SELECT created_at FROM bookings WHERE id = ?`
    if err := tx.QueryRowContext(ctx, sel, b.ID).Scan(&b.CreatedAt); err != nil {
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}

// GetByID fetches a single booking. ErrBookingNotFound is returned when
// no row matches.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
    b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrBookingNotFound
        }
        return nil, err
    }
    return b, nil
}

// ListByUser returns every booking made by the given email, ordered by
// date and time ascending. Callers partition and re-sort the result
// in memory; the repository only guarantees a deterministic base order.
func (r *BookingRepo) ListByUser(ctx context.Context, email string) ([]model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings
               WHERE user_email = ? ORDER BY booking_date, booking_time`
    return r.list(ctx, q, email)
}

// ListByTurf returns every booking on the given turf, ordered by date
// and time ascending. It backs the owner console.
func (r *BookingRepo) ListByTurf(ctx context.Context, turfID uint64) ([]model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings
               WHERE turf_id = ? ORDER BY booking_date, booking_time`
    return r.list(ctx, q, turfID)
}

func (r *BookingRepo) list(ctx context.Context, q string, args ...any) ([]model.Booking, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Booking, 0)
    for rows.Next() {
        b, err := scanBooking(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, *b)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// DeleteForTurf removes a booking only when it belongs to the given
// turf. It first checks the booking exists at all so callers can tell
// "no such booking" (ErrBookingNotFound) from "someone else's booking"
// (ErrForbidden).
func (r *BookingRepo) DeleteForTurf(ctx context.Context, id, turfID uint64) error {
    var actualTurfID uint64
    err := r.db.QueryRowContext(ctx, `SELECT turf_id FROM bookings WHERE id = ?`, id).Scan(&actualTurfID)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return ErrBookingNotFound
        }
        return err
    }
    if actualTurfID != turfID {
        return ErrForbidden
    }
    _, err = r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ? AND turf_id = ?`, id, turfID)
    return err
}
