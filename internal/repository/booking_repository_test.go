package repository

import (
    "context"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/go-sql-driver/mysql"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/turfer/turfer-api/internal/model"
)

func newBooking() *model.Booking {
    return &model.Booking{
        Reference: "ref-1",
        TurfID:    1,
        UserEmail: "a@x.com",
        Date:      "2025-06-01",
        Time:      "10:00",
        AmountPaid: "1500",
    }
}

func TestCreateSuccess(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
    mock.ExpectBegin()
    mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
        WithArgs(uint64(1), "2025-06-01", "10:00").
        WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
    mock.ExpectExec(`INSERT INTO bookings`).
        WithArgs("ref-1", uint64(1), "a@x.com", "2025-06-01", "10:00", "1500").
        WillReturnResult(sqlmock.NewResult(7, 1))
    mock.ExpectQuery(`SELECT created_at FROM bookings`).
        WithArgs(uint64(7)).
        WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
    mock.ExpectCommit()

    repo := NewBookingRepo(db)
    b := newBooking()
    require.NoError(t, repo.Create(context.Background(), b))
    assert.Equal(t, uint64(7), b.ID)
    assert.Equal(t, now, b.CreatedAt)
    assert.NoError(t, mock.ExpectationsWereMet())
}

// The pre-insert existence check answers the common conflict fast,
// without reaching the insert.
func TestCreateConflictOnPrecheck(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectBegin()
    mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
        WithArgs(uint64(1), "2025-06-01", "10:00").
        WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
    mock.ExpectRollback()

    repo := NewBookingRepo(db)
    err = repo.Create(context.Background(), newBooking())
    assert.ErrorIs(t, err, ErrSlotTaken)
    assert.NoError(t, mock.ExpectationsWereMet())
}

// A racing writer that passes the pre-check is stopped by the unique
// key; the MySQL duplicate-entry error must map to ErrSlotTaken, not to
// a generic storage failure.
func TestCreateConflictOnUniqueKey(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectBegin()
    mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
        WithArgs(uint64(1), "2025-06-01", "10:00").
        WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
    mock.ExpectExec(`INSERT INTO bookings`).
        WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
    mock.ExpectRollback()

    repo := NewBookingRepo(db)
    err = repo.Create(context.Background(), newBooking())
    assert.ErrorIs(t, err, ErrSlotTaken)
    assert.NoError(t, mock.ExpectationsWereMet())
}

// Backend faults stay distinguishable from conflicts.
func TestCreateStorageErrorIsNotConflict(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectBegin()
    mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
        WillReturnError(assert.AnError)
    mock.ExpectRollback()

    repo := NewBookingRepo(db)
    err = repo.Create(context.Background(), newBooking())
    require.Error(t, err)
    assert.NotErrorIs(t, err, ErrSlotTaken)
}

func TestBookedTimes(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectQuery(`SELECT booking_time FROM bookings`).
        WithArgs(uint64(1), "2025-06-01").
        WillReturnRows(sqlmock.NewRows([]string{"booking_time"}).AddRow("10:00").AddRow("18:00"))

    repo := NewBookingRepo(db)
    got, err := repo.BookedTimes(context.Background(), 1, "2025-06-01")
    require.NoError(t, err)
    assert.Equal(t, []string{"10:00", "18:00"}, got)
}

// A failed availability read must propagate as an error, never as an
// empty (all free) result.
func TestBookedTimesSurfacesStorageError(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectQuery(`SELECT booking_time FROM bookings`).
        WillReturnError(assert.AnError)

    repo := NewBookingRepo(db)
    got, err := repo.BookedTimes(context.Background(), 1, "2025-06-01")
    assert.Error(t, err)
    assert.Nil(t, got)
}

func TestDeleteForTurf(t *testing.T) {
    t.Run("not found", func(t *testing.T) {
        db, mock, err := sqlmock.New()
        require.NoError(t, err)
        defer db.Close()

        mock.ExpectQuery(`SELECT turf_id FROM bookings`).
            WithArgs(uint64(9)).
            WillReturnRows(sqlmock.NewRows([]string{"turf_id"}))

        repo := NewBookingRepo(db)
        assert.ErrorIs(t, repo.DeleteForTurf(context.Background(), 9, 1), ErrBookingNotFound)
    })

    t.Run("someone else's turf", func(t *testing.T) {
        db, mock, err := sqlmock.New()
        require.NoError(t, err)
        defer db.Close()

        mock.ExpectQuery(`SELECT turf_id FROM bookings`).
            WithArgs(uint64(9)).
            WillReturnRows(sqlmock.NewRows([]string{"turf_id"}).AddRow(2))

        repo := NewBookingRepo(db)
        assert.ErrorIs(t, repo.DeleteForTurf(context.Background(), 9, 1), ErrForbidden)
    })

    t.Run("own turf", func(t *testing.T) {
        db, mock, err := sqlmock.New()
        require.NoError(t, err)
        defer db.Close()

        mock.ExpectQuery(`SELECT turf_id FROM bookings`).
            WithArgs(uint64(9)).
            WillReturnRows(sqlmock.NewRows([]string{"turf_id"}).AddRow(1))
        mock.ExpectExec(`DELETE FROM bookings`).
            WithArgs(uint64(9), uint64(1)).
            WillReturnResult(sqlmock.NewResult(0, 1))

        repo := NewBookingRepo(db)
        assert.NoError(t, repo.DeleteForTurf(context.Background(), 9, 1))
    })
}
