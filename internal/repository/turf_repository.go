// Package repository contains data access logic separated from HTTP
// handlers. This file defines repository methods for turfs. The images,
// amenities and time-slot columns are stored as text and have carried
// inconsistent shapes over time, so every read passes them through the
// slot package normalizer before a model.Turf is constructed; the raw
// shape never leaks past this layer.
package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/turfer/turfer-api/internal/model"
    "github.com/turfer/turfer-api/internal/slot"
)

// turfColumns is the select list shared by every turf query.
const turfColumns = `id, name, address, pincode, images, price_per_hour,
                     amenities, rating, time_slots, owner_email, created_at, updated_at`

// TurfRepo encapsulates all database queries related to turfs. It
// depends on a sql.DB connection pool configured at startup.
type TurfRepo struct {
    db *sql.DB
}

// NewTurfRepo constructs a TurfRepo with the provided DB handle. This
// allows dependency injection of the database in tests and at startup.
func NewTurfRepo(db *sql.DB) *TurfRepo { return &TurfRepo{db: db} }

// scanTurf reads one row into a model.Turf, normalizing the three
// string-or-list columns.  An empty or malformed time-slot value falls
// back to the default catalog rather than failing the read.
func scanTurf(row interface{ Scan(...any) error }) (*model.Turf, error) {
    var t model.Turf
    var images, amenities, slots sql.NullString
    if err := row.Scan(
        &t.ID, &t.Name, &t.Address, &t.Pincode, &images, &t.PricePerHour,
        &amenities, &t.Rating, &slots, &t.OwnerEmail, &t.CreatedAt, &t.UpdatedAt,
    ); err != nil {
        return nil, err
    }
    t.Images = slot.ParseList(images.String)
    t.Amenities = slot.ParseList(amenities.String)
    t.TimeSlots = slot.Normalize(slots.String)
    return &t, nil
}

// Create inserts a new turf. On success the turf's ID field is
// populated with the auto-generated value and the timestamp fields are
// read back so callers receive a fully populated record.
func (r *TurfRepo) Create(ctx context.Context, t *model.Turf) error {
    const q = `INSERT INTO turfs
               (name, address, pincode, images, price_per_hour, amenities, rating, time_slots, owner_email)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q,
        t.Name, t.Address, t.Pincode, slot.EncodeList(t.Images), t.PricePerHour,
        slot.EncodeList(t.Amenities), t.Rating, slot.EncodeList(t.TimeSlots), t.OwnerEmail,
    )
    if err != nil {
        if isDuplicateKey(err) {
            return ErrOwnerExists
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    t.ID = uint64(id)
    const sel = `SELECT created_at, updated_at FROM turfs WHERE id = ?`
    return r.db.QueryRowContext(ctx, sel, t.ID).Scan(&t.CreatedAt, &t.UpdatedAt)
}

// GetByID fetches a turf by its ID. It returns ErrTurfNotFound when no
// row matches.
func (r *TurfRepo) GetByID(ctx context.Context, id uint64) (*model.Turf, error) {
    const q = `SELECT ` + turfColumns + ` FROM turfs WHERE id = ?`
    t, err := scanTurf(r.db.QueryRowContext(ctx, q, id))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrTurfNotFound
        }
        return nil, err
    }
    return t, nil
}

// GetByOwnerEmail fetches the turf whose owner_email matches email.
// The platform keys ownership on email equality: one owner, one
// listing. ErrTurfNotFound is returned when the email owns nothing.
func (r *TurfRepo) GetByOwnerEmail(ctx context.Context, email string) (*model.Turf, error) {
    const q = `SELECT ` + turfColumns + ` FROM turfs WHERE owner_email = ?`
    t, err := scanTurf(r.db.QueryRowContext(ctx, q, email))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrTurfNotFound
        }
        return nil, err
    }
    return t, nil
}

// ListByPincode returns all turfs in the given postal code, ordered by
// id for stable paging. Matching is exact string equality, not
// geodistance.
func (r *TurfRepo) ListByPincode(ctx context.Context, pincode string) ([]*model.Turf, error) {
    const q = `SELECT ` + turfColumns + ` FROM turfs WHERE pincode = ? ORDER BY id`
    return r.list(ctx, q, pincode)
}

// ListAll returns every turf regardless of location. It backs the admin
// console, which manages the full inventory.
func (r *TurfRepo) ListAll(ctx context.Context) ([]*model.Turf, error) {
    const q = `SELECT ` + turfColumns + ` FROM turfs ORDER BY id`
    return r.list(ctx, q)
}

func (r *TurfRepo) list(ctx context.Context, q string, args ...any) ([]*model.Turf, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]*model.Turf, 0)
    for rows.Next() {
        t, err := scanTurf(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, t)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// Update overwrites every mutable turf field by id. It is the admin
// path: admins may edit any listing. sql.ErrNoRows is returned when no
// row was affected.
func (r *TurfRepo) Update(ctx context.Context, t *model.Turf) error {
    const q = `UPDATE turfs
               SET name = ?, address = ?, pincode = ?, images = ?, price_per_hour = ?,
                   amenities = ?, rating = ?, time_slots = ?, owner_email = ?,
                   updated_at = CURRENT_TIMESTAMP
               WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q,
        t.Name, t.Address, t.Pincode, slot.EncodeList(t.Images), t.PricePerHour,
        slot.EncodeList(t.Amenities), t.Rating, slot.EncodeList(t.TimeSlots), t.OwnerEmail,
        t.ID,
    )
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return sql.ErrNoRows
    }
    return nil
}

// UpdateListing updates the owner-editable subset of fields on the turf
// owned by ownerEmail: address, images, hourly price and the slot
// catalog. sql.ErrNoRows is returned when the email owns no listing.
func (r *TurfRepo) UpdateListing(ctx context.Context, ownerEmail, address string, images []string, pricePerHour uint32, timeSlots []string) error {
    const q = `UPDATE turfs
               SET address = ?, images = ?, price_per_hour = ?, time_slots = ?,
                   updated_at = CURRENT_TIMESTAMP
               WHERE owner_email = ?`
    res, err := r.db.ExecContext(ctx, q,
        address, slot.EncodeList(images), pricePerHour, slot.EncodeList(timeSlots), ownerEmail,
    )
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return sql.ErrNoRows
    }
    return nil
}

// Delete removes a turf and its bookings inside one transaction so a
// listing never disappears while its reservations linger. sql.ErrNoRows
// is returned when the turf does not exist.
func (r *TurfRepo) Delete(ctx context.Context, id uint64) error {
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
    if _, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE turf_id = ?`, id); err != nil {
        return err
    }
    res, err := tx.ExecContext(ctx, `DELETE FROM turfs WHERE id = ?`, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return sql.ErrNoRows
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}
