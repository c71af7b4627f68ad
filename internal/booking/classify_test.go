package booking

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/turfer/turfer-api/internal/model"
)

func mk(id uint64, email, date, tm string) model.Booking {
    return model.Booking{ID: id, UserEmail: email, Date: date, Time: tm}
}

func TestPartitionTotalAndDisjoint(t *testing.T) {
    now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
    in := []model.Booking{
        mk(1, "a@x.com", "2025-05-31", "18:00"),
        mk(2, "b@x.com", "2025-06-01", "09:00"),
        mk(3, "c@x.com", "2025-06-01", "11:00"),
        mk(4, "d@x.com", "2025-06-02", "07:00"),
    }
    upcoming, past := Partition(in, now)

    assert.Len(t, upcoming, 2)
    assert.Len(t, past, 2)
    require.Equal(t, len(in), len(upcoming)+len(past))

    seen := map[uint64]int{}
    for _, b := range upcoming {
        seen[b.ID]++
    }
    for _, b := range past {
        seen[b.ID]++
    }
    for _, b := range in {
        assert.Equal(t, 1, seen[b.ID], "booking %d must appear exactly once", b.ID)
    }
}

// A booking starting exactly at the reference instant is upcoming.  The
// boundary is inclusive on the upcoming side and is easy to get backwards,
// so it gets its own test.
func TestPartitionBoundaryIsUpcoming(t *testing.T) {
    now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
    in := []model.Booking{mk(1, "a@x.com", "2025-06-01", "10:00")}

    upcoming, past := Partition(in, now)
    assert.Len(t, upcoming, 1)
    assert.Empty(t, past)
}

func TestPartitionMalformedRowIsPast(t *testing.T) {
    now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
    in := []model.Booking{
        mk(1, "a@x.com", "not-a-date", "10:00"),
        mk(2, "b@x.com", "2025-06-01", "25:99"),
    }
    upcoming, past := Partition(in, now)
    assert.Empty(t, upcoming)
    assert.Len(t, past, 2)
}

func TestPartitionIdempotent(t *testing.T) {
    now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
    in := []model.Booking{
        mk(1, "a@x.com", "2025-05-31", "18:00"),
        mk(2, "b@x.com", "2025-06-02", "09:00"),
    }
    up1, past1 := Partition(in, now)
    up2, past2 := Partition(in, now)
    assert.Equal(t, up1, up2)
    assert.Equal(t, past1, past2)
}

func TestFilterByEmail(t *testing.T) {
    in := []model.Booking{
        mk(1, "alice@x.com", "2025-06-01", "09:00"),
        mk(2, "bob@y.com", "2025-06-01", "10:00"),
        mk(3, "Alice.Smith@z.com", "2025-06-01", "11:00"),
    }

    assert.Len(t, FilterByEmail(in, "alice"), 2)
    assert.Len(t, FilterByEmail(in, "@y.com"), 1)
    assert.Empty(t, FilterByEmail(in, "nobody"))
    assert.Equal(t, in, FilterByEmail(in, ""))
}

func TestFilterByDate(t *testing.T) {
    in := []model.Booking{
        mk(1, "a@x.com", "2025-06-01", "09:00"),
        mk(2, "b@x.com", "2025-06-02", "09:00"),
    }
    got := FilterByDate(in, "2025-06-01")
    require.Len(t, got, 1)
    assert.Equal(t, uint64(1), got[0].ID)
    assert.Equal(t, in, FilterByDate(in, ""))
}

func TestSortByTime(t *testing.T) {
    in := []model.Booking{
        mk(1, "a@x.com", "2025-06-02", "09:00"),
        mk(2, "b@x.com", "2025-06-01", "18:00"),
        mk(3, "c@x.com", "2025-06-01", "09:00"),
    }

    asc := SortByTime(in, true)
    assert.Equal(t, []uint64{3, 2, 1}, ids(asc))

    desc := SortByTime(in, false)
    assert.Equal(t, []uint64{1, 2, 3}, ids(desc))

    // input untouched
    assert.Equal(t, []uint64{1, 2, 3}, ids(in))
}

func ids(in []model.Booking) []uint64 {
    out := make([]uint64, len(in))
    for i, b := range in {
        out[i] = b.ID
    }
    return out
}
