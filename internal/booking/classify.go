// Package booking contains the pure read-time computations over booking
// lists: partitioning into upcoming and past relative to a reference
// instant, and the filter/sort operations backing the owner console.
// Nothing here touches storage; every function is a pure function of its
// inputs so repeated calls with the same arguments yield identical
// results.
package booking

import (
    "sort"
    "strings"
    "time"

    "github.com/turfer/turfer-api/internal/model"
)

// Partition splits bookings into upcoming and past relative to now.
// Every input booking lands in exactly one of the two slices.  A booking
// whose start instant equals now exactly is upcoming: the boundary is
// inclusive on the upcoming side.  A booking whose date or time cannot
// be parsed is classified past, so malformed legacy rows never surface
// as actionable upcoming entries.
func Partition(bookings []model.Booking, now time.Time) (upcoming, past []model.Booking) {
    upcoming = make([]model.Booking, 0, len(bookings))
    past = make([]model.Booking, 0, len(bookings))
    now = now.UTC()
    for _, b := range bookings {
        when, ok := b.When()
        if ok && !when.Before(now) {
            upcoming = append(upcoming, b)
        } else {
            past = append(past, b)
        }
    }
    return upcoming, past
}

// FilterByEmail keeps bookings whose user email contains q,
// case-insensitively.  An empty query returns the input unchanged.
func FilterByEmail(bookings []model.Booking, q string) []model.Booking {
    q = strings.ToLower(strings.TrimSpace(q))
    if q == "" {
        return bookings
    }
    out := make([]model.Booking, 0, len(bookings))
    for _, b := range bookings {
        if strings.Contains(strings.ToLower(b.UserEmail), q) {
            out = append(out, b)
        }
    }
    return out
}

// FilterByDate keeps bookings whose calendar date matches date exactly
// (YYYY-MM-DD string equality).  An empty date returns the input
// unchanged.
func FilterByDate(bookings []model.Booking, date string) []model.Booking {
    date = strings.TrimSpace(date)
    if date == "" {
        return bookings
    }
    out := make([]model.Booking, 0, len(bookings))
    for _, b := range bookings {
        if b.Date == date {
            out = append(out, b)
        }
    }
    return out
}

// SortByTime returns a copy of bookings ordered by (date, time).
// Ascending when asc is true, descending otherwise.  Unparseable rows
// sort as the zero instant, so they group at the old end of the list.
// The input slice is not modified.
func SortByTime(bookings []model.Booking, asc bool) []model.Booking {
    out := make([]model.Booking, len(bookings))
    copy(out, bookings)
    sort.SliceStable(out, func(i, j int) bool {
        ti, _ := out[i].When()
        tj, _ := out[j].When()
        if asc {
            return ti.Before(tj)
        }
        return tj.Before(ti)
    })
    return out
}
