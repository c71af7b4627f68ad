package repository

import (
    "context"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/turfer/turfer-api/internal/slot"
)

var turfCols = []string{
    "id", "name", "address", "pincode", "images", "price_per_hour",
    "amenities", "rating", "time_slots", "owner_email", "created_at", "updated_at",
}

func turfRow(slots string) *sqlmock.Rows {
    now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
    return sqlmock.NewRows(turfCols).AddRow(
        1, "Urban Kicks", "Andheri West, Mumbai", "400058",
        `["https://img/a.jpg","https://img/b.jpg"]`, 1500,
        `["Floodlights","Parking"]`, 4.8, slots, "owner@x.com", now, now,
    )
}

func TestGetByIDNormalizesStoredShapes(t *testing.T) {
    tests := []struct {
        name  string
        slots string
        want  []string
    }{
        {
            name:  "native json array",
            slots: `["09:00","10:00"]`,
            want:  []string{"09:00", "10:00"},
        },
        {
            name:  "json encoded string",
            slots: `"[\"09:00\",\"10:00\"]"`,
            want:  []string{"09:00", "10:00"},
        },
        {
            name:  "empty falls back to default catalog",
            slots: "",
            want:  slot.DefaultSlots(),
        },
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            db, mock, err := sqlmock.New()
            require.NoError(t, err)
            defer db.Close()

            mock.ExpectQuery(`SELECT .+ FROM turfs WHERE id = \?`).
                WithArgs(uint64(1)).
                WillReturnRows(turfRow(tt.slots))

            repo := NewTurfRepo(db)
            turf, err := repo.GetByID(context.Background(), 1)
            require.NoError(t, err)
            assert.Equal(t, tt.want, turf.TimeSlots)
            assert.Equal(t, []string{"https://img/a.jpg", "https://img/b.jpg"}, turf.Images)
        })
    }
}

func TestGetByIDNotFound(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectQuery(`SELECT .+ FROM turfs WHERE id = \?`).
        WithArgs(uint64(42)).
        WillReturnRows(sqlmock.NewRows(turfCols))

    repo := NewTurfRepo(db)
    _, err = repo.GetByID(context.Background(), 42)
    assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestGetByOwnerEmailNotFound(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectQuery(`SELECT .+ FROM turfs WHERE owner_email = \?`).
        WithArgs("nobody@x.com").
        WillReturnRows(sqlmock.NewRows(turfCols))

    repo := NewTurfRepo(db)
    _, err = repo.GetByOwnerEmail(context.Background(), "nobody@x.com")
    assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestListByPincode(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectQuery(`SELECT .+ FROM turfs WHERE pincode = \?`).
        WithArgs("400058").
        WillReturnRows(turfRow(`["09:00"]`))

    repo := NewTurfRepo(db)
    turfs, err := repo.ListByPincode(context.Background(), "400058")
    require.NoError(t, err)
    require.Len(t, turfs, 1)
    assert.Equal(t, "Urban Kicks", turfs[0].Name)
}
